package cmdline

import "fmt"

// ArgLevel says whether a positional argument or a switch value is
// forbidden, optional or required.
type ArgLevel int

const (
	None ArgLevel = iota
	Optional
	Required
)

var levelNames = map[ArgLevel]string{
	None:     "none",
	Optional: "optional",
	Required: "required",
}

func (l ArgLevel) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("ArgLevel(%d)", int(l))
}

// ParseArgLevel maps "none", "optional" or "required" to a level.
// The empty string is treated as none.
func ParseArgLevel(s string) (ArgLevel, error) {
	switch s {
	case "", "none":
		return None, nil
	case "optional":
		return Optional, nil
	case "required":
		return Required, nil
	}
	return None, fmt.Errorf("invalid argument level: %q (expected none, optional or required)", s)
}
