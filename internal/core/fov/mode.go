package fov

import "fmt"

// Mode selects the visibility strategy.
type Mode int

const (
	// ModeEndpoint draws sightlines to wall endpoints inside the cone.
	ModeEndpoint Mode = iota
	// ModeRayCast casts evenly spaced rays and stops each at the nearest wall.
	ModeRayCast
)

func (m Mode) String() string {
	switch m {
	case ModeEndpoint:
		return "endpoint"
	case ModeRayCast:
		return "raycast"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Next returns the other strategy.
func (m Mode) Next() Mode {
	if m == ModeRayCast {
		return ModeEndpoint
	}
	return ModeRayCast
}

// ParseMode parses "endpoint" or "raycast".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "endpoint", "edge":
		return ModeEndpoint, nil
	case "raycast", "ray":
		return ModeRayCast, nil
	}
	return 0, fmt.Errorf("unknown visibility mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeEndpoint, ModeRayCast:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown visibility mode %d", int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
