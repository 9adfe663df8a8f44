package scene

import "fmt"

// Enumerations and colors serialize by name so the JSON dump reads
// without a lookup table.

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k SegmentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (c LineCap) String() string {
	if c == CapRound {
		return "round"
	}
	return "flat"
}

func (c LineCap) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// MarshalText writes "none", "#rrggbb" or "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	switch c.A {
	case 0:
		return []byte("none"), nil
	case 255:
		return []byte(c.Hex()), nil
	default:
		return []byte(fmt.Sprintf("%s%02x", c.Hex(), c.A)), nil
	}
}

func (c *Color) UnmarshalText(b []byte) error {
	s := string(b)
	if s == "none" || s == "" {
		*c = None
		return nil
	}
	var r, g, bl, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &bl); err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
		a = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%2x%2x%2x%2x", &r, &g, &bl, &a); err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
	default:
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	*c = Color{R: r, G: g, B: bl, A: a}
	return nil
}
