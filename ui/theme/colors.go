package theme

import "image/color"

// Light palette, taken from the Typora-like look of the converter window
var (
	ColorBackground    = color.NRGBA{R: 245, G: 245, B: 245, A: 255} // #F5F5F5
	ColorPanel         = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // #FFFFFF
	ColorText          = color.NRGBA{R: 44, G: 62, B: 80, A: 255}    // #2C3E50
	ColorTextMuted     = color.NRGBA{R: 127, G: 140, B: 141, A: 255} // #7F8C8D
	ColorSelection     = color.NRGBA{R: 189, G: 195, B: 199, A: 255} // #BDC3C7
	ColorInputBorder   = color.NRGBA{R: 52, G: 152, B: 219, A: 255}  // #3498DB
	ColorFocusBorder   = color.NRGBA{R: 41, G: 128, B: 185, A: 255}  // #2980B9
	ColorDisabledLight = color.NRGBA{R: 220, G: 220, B: 220, A: 255} // #DCDCDC
)

// Dark palette
var (
	ColorBackgroundDark = color.NRGBA{R: 18, G: 18, B: 18, A: 255}    // #121212
	ColorPanelDark      = color.NRGBA{R: 30, G: 30, B: 30, A: 255}    // #1E1E1E
	ColorTextDark       = color.NRGBA{R: 236, G: 240, B: 241, A: 255} // #ECF0F1
	ColorTextMutedDark  = color.NRGBA{R: 158, G: 158, B: 158, A: 255} // #9E9E9E
	ColorSelectionDark  = color.NRGBA{R: 70, G: 90, B: 110, A: 255}   // #465A6E
	ColorDisabledDark   = color.NRGBA{R: 38, G: 38, B: 38, A: 255}    // #262626
)

// Action colors (shared by both variants)
var (
	ColorConvert = color.NRGBA{R: 52, G: 152, B: 219, A: 255} // #3498DB
	ColorStrip   = color.NRGBA{R: 155, G: 89, B: 182, A: 255} // #9B59B6
	ColorCopy    = color.NRGBA{R: 46, G: 204, B: 113, A: 255} // #2ECC71
	ColorClear   = color.NRGBA{R: 231, G: 76, B: 60, A: 255}  // #E74C3C
	ColorOnColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Blend blends two colors with a given weight (0.0 = first color, 1.0 = second color)
func Blend(c1, c2 color.Color, weight float64) color.Color {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()

	return color.NRGBA{
		R: uint8((float64(r1>>8)*(1-weight) + float64(r2>>8)*weight)),
		G: uint8((float64(g1>>8)*(1-weight) + float64(g2>>8)*weight)),
		B: uint8((float64(b1>>8)*(1-weight) + float64(b2>>8)*weight)),
		A: uint8((float64(a1>>8)*(1-weight) + float64(a2>>8)*weight)),
	}
}

// Darken moves c towards black; hover and pressed states use it.
func Darken(c color.Color, amount float64) color.Color {
	_, _, _, a := c.RGBA()
	return Blend(c, color.NRGBA{A: uint8(a >> 8)}, amount)
}

// WithAlpha returns c with its alpha replaced; disabled buttons use it.
func WithAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: alpha,
	}
}
