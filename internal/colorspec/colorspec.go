// Package colorspec parses the small color vocabulary the module
// parameter bundle uses: #rrggbb hex strings and the standard ink table.
package colorspec

import (
	"errors"
	"fmt"
)

// RGB is an 8-bit color triple, used for paper, ink and duotone colors.
type RGB struct {
	R, G, B byte
}

// ParseHex parses a "#rrggbb" string into an RGB. Returns an error for
// anything that isn't exactly a 7-character, well-formed hex color.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("colorspec: %q is not a #rrggbb color", s)
	}
	r, err := hexByte(s[1:3])
	if err != nil {
		return RGB{}, fmt.Errorf("colorspec: %q: %w", s, err)
	}
	g, err := hexByte(s[3:5])
	if err != nil {
		return RGB{}, fmt.Errorf("colorspec: %q: %w", s, err)
	}
	b, err := hexByte(s[5:7])
	if err != nil {
		return RGB{}, fmt.Errorf("colorspec: %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex parses a hex color known to be valid at compile time (used
// for the standard ink table below); it panics on malformed input.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexByte(pair string) (byte, error) {
	if len(pair) != 2 {
		return 0, errors.New("bad hex pair")
	}
	hi, err := hexNibble(pair[0])
	if err != nil {
		return 0, err
	}
	lo, err := hexNibble(pair[1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("bad hex digit %q", c)
	}
}

// String renders an RGB back as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Standard offset-press ink colors.
var (
	InkCyan    = MustParseHex("#009fce")
	InkMagenta = MustParseHex("#d4006a")
	InkYellow  = MustParseHex("#f5d800")
	InkBlack   = MustParseHex("#100c08")
)

// DefaultPaperColor is halftone's default paper base color.
var DefaultPaperColor = MustParseHex("#f0ead8")
