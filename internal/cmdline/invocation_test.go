package cmdline

import (
	"strings"
	"testing"
)

func TestInvocation_Accessors(t *testing.T) {
	inv, err := testRegistry().Parse("edit -name Ann -age 41 -q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := inv.Argument(); ok {
		t.Fatalf("expected no argument")
	}
	if !inv.Has("quiet") {
		t.Fatalf("expected quiet present")
	}
	if _, ok := inv.Value("quiet"); ok {
		t.Fatalf("expected quiet without value")
	}
	if v, ok := inv.Value("name"); !ok || v != "Ann" {
		t.Fatalf("unexpected name: %q", v)
	}
	n, ok, err := inv.Int("age")
	if err != nil || !ok || n != 41 {
		t.Fatalf("unexpected age: %d %v %v", n, ok, err)
	}
	if got := strings.Join(inv.SwitchNames(), ","); got != "age,name,quiet" {
		t.Fatalf("unexpected switch names: %s", got)
	}
}

func TestInvocation_IntErrors(t *testing.T) {
	inv, err := testRegistry().Parse("edit -name Ann -age forty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := inv.Int("age"); err == nil || err.Error() != `switch age: "forty" is not a whole number` {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, err := inv.Int("quiet"); ok || err != nil {
		t.Fatalf("expected absent value")
	}
}
