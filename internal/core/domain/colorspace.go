package domain

import "fmt"

// ColorSpace is a value object for the color space the plugin configures.
type ColorSpace string

const (
	ColorSpaceDisplayP3 ColorSpace = "displayP3"
	ColorSpaceSRGB      ColorSpace = "SRGB"
)

// DefaultColorSpace is used when the user accepts the prompt default.
const DefaultColorSpace = ColorSpaceDisplayP3

// NewColorSpace creates a ColorSpace with validation. Matching is
// case-sensitive: only the two exact values are accepted.
func NewColorSpace(value string) (ColorSpace, error) {
	switch ColorSpace(value) {
	case ColorSpaceDisplayP3, ColorSpaceSRGB:
		return ColorSpace(value), nil
	default:
		return "", fmt.Errorf("invalid color space %q (expected %q or %q)",
			value, ColorSpaceDisplayP3, ColorSpaceSRGB)
	}
}

// String returns the string representation of the ColorSpace
func (c ColorSpace) String() string {
	return string(c)
}
