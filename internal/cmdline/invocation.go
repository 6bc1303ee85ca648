package cmdline

import (
	"fmt"
	"sort"
	"strconv"
)

// Invocation is the validated result of parsing one input line. A nil Arg
// means no positional argument was given; a nil switch value means the
// switch was present without a value.
type Invocation struct {
	Command  string             `json:"command"`
	Arg      *string            `json:"arg"`
	Switches map[string]*string `json:"switches"`
}

// Argument returns the positional argument and whether one was given.
func (inv Invocation) Argument() (string, bool) {
	if inv.Arg == nil {
		return "", false
	}
	return *inv.Arg, true
}

// Has reports whether the switch was present, with or without a value.
func (inv Invocation) Has(name string) bool {
	_, ok := inv.Switches[name]
	return ok
}

// Value returns the value of a switch and whether it carried one.
func (inv Invocation) Value(name string) (string, bool) {
	v, ok := inv.Switches[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Int parses the value of a switch as an integer. ok is false when the
// switch has no value.
func (inv Invocation) Int(name string) (n int, ok bool, err error) {
	v, ok := inv.Value(name)
	if !ok {
		return 0, false, nil
	}
	n, err = strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("switch %s: %q is not a whole number", name, v)
	}
	return n, true, nil
}

// SwitchNames returns the present switch names in sorted order.
func (inv Invocation) SwitchNames() []string {
	names := make([]string, 0, len(inv.Switches))
	for k := range inv.Switches {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
