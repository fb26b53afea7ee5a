// Package canvas abstracts the drawing surface the layout engine paints
// on. The Canvas interface covers the primitive set the templates need;
// PDF is the gofpdf-backed implementation and the only type in the module
// that talks to the PDF library.
package canvas

// RGB is an RGB color value.
type RGB struct {
	R, G, B int
}

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Canvas is a drawing surface. Coordinates are in millimeters with the
// origin at the top-left corner of the page; text is positioned by its
// baseline.
type Canvas interface {
	// SetFont selects the font face for subsequent text. Family is one of
	// the base-14 names ("Times", "Helvetica", "Courier"); style is "",
	// "B", "I" or "BI"; size is in points.
	SetFont(family, style string, size float64)
	SetTextColor(c RGB)
	SetDrawColor(c RGB)
	SetFillColor(c RGB)
	SetLineWidth(w float64)

	// Text draws s with its baseline at y. For AlignCenter and AlignRight
	// the x coordinate is the center and right edge respectively.
	Text(x, y float64, s string, align Align)
	// TextWidth measures s in the current font.
	TextWidth(s string) float64

	Line(x1, y1, x2, y2 float64)
	// Rect draws a rectangle, filled with the fill color when fill is set,
	// outlined with the draw color otherwise.
	Rect(x, y, w, h float64, fill bool)
	RoundedRect(x, y, w, h, radius float64, fill bool)
	Circle(x, y, radius float64, fill bool)

	// Barcode draws a Code128 barcode of code into the given box.
	Barcode(code string, x, y, w, h float64) error
}
