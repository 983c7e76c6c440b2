package level

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is an 8-bit RGBA colour, parsed from CSS-like hex codes.
type Color struct {
	R, G, B, A uint8
}

// ColorErrorKind classifies a rejected colour code.
type ColorErrorKind int

const (
	ColorInvalidLength ColorErrorKind = iota
	ColorMissingHash
	ColorUnknownFormat
)

// ColorError reports why a colour code was rejected.
type ColorError struct {
	Kind   ColorErrorKind
	Code   string
	Length int
}

func (e *ColorError) Error() string {
	switch e.Kind {
	case ColorInvalidLength:
		return fmt.Sprintf("rgba code %q has length %d but should be 4, 7 or 9 octets long", e.Code, e.Length)
	case ColorMissingHash:
		return fmt.Sprintf("rgba code %q is missing the leading `#`", e.Code)
	default:
		return fmt.Sprintf("rgba code %q is of an unknown format", e.Code)
	}
}

// ColorFromUint32 unpacks 0xRRGGBBAA.
func ColorFromUint32(v uint32) Color {
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// ParseColor accepts #RGB, #RRGGBB and #RRGGBBAA. Short and six-digit forms are opaque.
func ParseColor(code string) (Color, error) {
	switch len(code) {
	case 4, 7, 9:
	default:
		return Color{}, &ColorError{Kind: ColorInvalidLength, Code: code, Length: len(code)}
	}
	if code[0] != '#' {
		return Color{}, &ColorError{Kind: ColorMissingHash, Code: code}
	}
	digits := code[1:]
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, &ColorError{Kind: ColorUnknownFormat, Code: code}
	}
	switch len(digits) {
	case 3:
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return Color{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	case 6:
		return ColorFromUint32(uint32(v)<<8 | 0xff), nil
	default:
		return ColorFromUint32(uint32(v)), nil
	}
}

// ToRGBA converts to the image/color type.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
