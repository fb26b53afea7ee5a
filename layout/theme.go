// Package layout computes the drawing sequences for the document
// templates: the job appointment letter and the two bill variants. All
// coordinates are millimeters relative to the rendered region, so the
// same template draws a full page or a stacked half page unchanged.
package layout

import (
	"github.com/gourav-1711/docs-genrator/canvas"
	"github.com/gourav-1711/docs-genrator/model"
)

// Rect is a rectangular region of the page.
type Rect struct {
	X, Y, W, H float64
}

// Palette is the color set a template draws with.
type Palette struct {
	Primary   canvas.RGB // headings, borders, banners
	Secondary canvas.RGB // faint fills (5% tint over white)
	Accent    canvas.RGB // separators (20% tint over white)
	Dark      canvas.RGB // body text
}

var (
	classicRed = Palette{
		Primary:   canvas.RGB{R: 204, G: 0, B: 0},
		Secondary: canvas.RGB{R: 252, G: 242, B: 242},
		Accent:    canvas.RGB{R: 244, G: 204, B: 204},
		Dark:      canvas.RGB{R: 40, G: 40, B: 40},
	}
	classicYellow = Palette{
		Primary:   canvas.RGB{R: 176, G: 140, B: 50},
		Secondary: canvas.RGB{R: 251, G: 249, B: 240},
		Accent:    canvas.RGB{R: 240, G: 226, B: 194},
		Dark:      canvas.RGB{R: 40, G: 40, B: 40},
	}
)

// ClassicPalette resolves the jewellery-template palette. Anything other
// than yellow, including the empty value, is the red default.
func ClassicPalette(c model.ClassicColor) Palette {
	if c == model.ColorYellow {
		return classicYellow
	}
	return classicRed
}

// ecommerce is the fixed dark/gold modern-invoice palette. It is not
// user-selectable.
var ecom = struct {
	Dark      canvas.RGB
	Gold      canvas.RGB
	HeaderBar canvas.RGB
	RowTint   canvas.RGB
	Muted     canvas.RGB
	Border    canvas.RGB
	White     canvas.RGB
}{
	Dark:      canvas.RGB{R: 15, G: 23, B: 42},
	Gold:      canvas.RGB{R: 251, G: 191, B: 36},
	HeaderBar: canvas.RGB{R: 241, G: 245, B: 249},
	RowTint:   canvas.RGB{R: 248, G: 250, B: 252},
	Muted:     canvas.RGB{R: 100, G: 116, B: 139},
	Border:    canvas.RGB{R: 226, G: 232, B: 240},
	White:     canvas.RGB{R: 255, G: 255, B: 255},
}

// Letterhead tones for the job letter.
var (
	letterGold   = canvas.RGB{R: 139, G: 119, B: 42}
	letterBorder = canvas.RGB{R: 180, G: 160, B: 100}
	letterInner  = canvas.RGB{R: 200, G: 180, B: 120}
	letterBody   = canvas.RGB{R: 40, G: 40, B: 40}
	letterMuted  = canvas.RGB{R: 80, G: 80, B: 80}
)
