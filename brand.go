package assetgen

import (
	"fmt"
	"math"
	"strconv"
)

// Color is a hexadecimal RGB triple of the form #rrggbb, without alpha.
type Color string

// RGB returns the red, green and blue channel values of the color.
func (c Color) RGB() (r, g, b uint8, err error) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid color literal %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color literal %q: %v", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// rgbToColor formats the channel values back into an uppercase #RRGGBB
// literal, matching the canonical form of the brand color table so that
// interpolated endpoints compare equal to the configured colors.
func rgbToColor(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// Brand is the immutable configuration describing the brand identity: the
// color table used by the vector composer and the metadata fields written
// into the web app manifest. The value is passed explicitly to the composer
// functions, keeping a single source of truth without global state.
type Brand struct {
	Primary   Color
	Secondary Color
	Accent    Color
	Dark      Color
	Light     Color
	Success   Color
	Warning   Color
	Error     Color

	GradientStart Color
	GradientEnd   Color

	Name        string
	ShortName   string
	Description string
	Display     string
	StartURL    string
}

// DefaultBrand returns the canonical InsightWave brand configuration.
func DefaultBrand() Brand {
	return Brand{
		Primary:   "#4A6FFF", // bright blue
		Secondary: "#6E56CF", // purple
		Accent:    "#00C2FF", // cyan
		Dark:      "#1A1D2B", // dark blue/gray
		Light:     "#F5F9FF", // light blue/white
		Success:   "#2DD4BF", // teal
		Warning:   "#F59E0B", // amber
		Error:     "#EF4444", // red

		GradientStart: "#4A6FFF",
		GradientEnd:   "#00C2FF",

		Name:        "InsightWave",
		ShortName:   "InsightWave",
		Description: "Conversations that elevate your thinking",
		Display:     "standalone",
		StartURL:    "/",
	}
}

// GradientStops interpolates count evenly spaced colors between the brand
// gradient start and end colors. Each channel is interpolated linearly and
// rounded to the nearest integer independently. A single requested stop
// returns the start color; count below one is undefined input and yields nil.
func (b Brand) GradientStops(count int) []Color {
	if count < 1 {
		return nil
	}

	sr, sg, sb, err := b.GradientStart.RGB()
	if err != nil {
		return nil
	}
	er, eg, eb, err := b.GradientEnd.RGB()
	if err != nil {
		return nil
	}

	stops := make([]Color, 0, count)
	for i := 0; i < count; i++ {
		var t float64
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		stops = append(stops, rgbToColor(
			lerpChannel(sr, er, t),
			lerpChannel(sg, eg, t),
			lerpChannel(sb, eb, t),
		))
	}
	return stops
}

// lerpChannel interpolates a single color channel and rounds to the nearest
// integer value.
func lerpChannel(start, end uint8, t float64) uint8 {
	return uint8(math.Round(float64(start) + (float64(end)-float64(start))*t))
}
