package core

import "fmt"

// Color is a 24-bit RGB foreground color for a screen cell.
// The zero value means the terminal default color.
type Color uint32

// ColorDefault leaves the cell's foreground up to the terminal.
const ColorDefault Color = 0

// Bit 24 distinguishes an explicit black (RGB 0,0,0) from the default color.
const colorSet = 1 << 24

// RGB builds a color from red, green and blue components.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Gray builds an achromatic color with all three components equal to v.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// IsDefault returns true for the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// RGB returns the color components. All zero for the default color.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a "#rrggbb" string suitable for lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseHex converts a "#rrggbb" string to a Color.
// Returns ColorDefault and false if the string is not a valid hex color.
func ParseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return ColorDefault, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return ColorDefault, false
	}
	return RGB(r, g, b), true
}
