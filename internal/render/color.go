// internal/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor brightens each channel by d, saturating at 255.
func LightenColor(c color.RGBA, d int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+d)),
		G: uint8(min(255, int(c.G)+d)),
		B: uint8(min(255, int(c.B)+d)),
		A: 255,
	}
}
