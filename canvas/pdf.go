package canvas

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	gofpdf "github.com/jung-kurt/gofpdf"
)

// barcodeScale is the rasterization density of embedded barcodes, in
// pixels per millimeter.
const barcodeScale = 8

// PDF is a Canvas backed by a gofpdf document. Each render call creates
// its own PDF; instances are not safe for concurrent use.
type PDF struct {
	fpdf *gofpdf.Fpdf
}

// NewPDF creates a single-page-size portrait PDF surface measured in
// millimeters. The creation date is pinned so identical drawing sequences
// serialize to identical bytes.
func NewPDF(width, height float64) *PDF {
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	f.SetAutoPageBreak(false, 0)
	f.SetCreationDate(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	return &PDF{fpdf: f}
}

// SetTitle sets the document title metadata.
func (p *PDF) SetTitle(title string) {
	p.fpdf.SetTitle(title, true)
}

// AddPage starts a new blank page.
func (p *PDF) AddPage() {
	p.fpdf.AddPage()
}

// SetFont implements Canvas.
func (p *PDF) SetFont(family, style string, size float64) {
	p.fpdf.SetFont(family, style, size)
}

// SetTextColor implements Canvas.
func (p *PDF) SetTextColor(c RGB) {
	p.fpdf.SetTextColor(c.R, c.G, c.B)
}

// SetDrawColor implements Canvas.
func (p *PDF) SetDrawColor(c RGB) {
	p.fpdf.SetDrawColor(c.R, c.G, c.B)
}

// SetFillColor implements Canvas.
func (p *PDF) SetFillColor(c RGB) {
	p.fpdf.SetFillColor(c.R, c.G, c.B)
}

// SetLineWidth implements Canvas.
func (p *PDF) SetLineWidth(w float64) {
	p.fpdf.SetLineWidth(w)
}

// Text implements Canvas.
func (p *PDF) Text(x, y float64, s string, align Align) {
	switch align {
	case AlignCenter:
		x -= p.fpdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= p.fpdf.GetStringWidth(s)
	}
	p.fpdf.Text(x, y, s)
}

// TextWidth implements Canvas.
func (p *PDF) TextWidth(s string) float64 {
	return p.fpdf.GetStringWidth(s)
}

// Line implements Canvas.
func (p *PDF) Line(x1, y1, x2, y2 float64) {
	p.fpdf.Line(x1, y1, x2, y2)
}

// Rect implements Canvas.
func (p *PDF) Rect(x, y, w, h float64, fill bool) {
	p.fpdf.Rect(x, y, w, h, drawStyle(fill))
}

// RoundedRect implements Canvas.
func (p *PDF) RoundedRect(x, y, w, h, radius float64, fill bool) {
	p.fpdf.RoundedRect(x, y, w, h, radius, "1234", drawStyle(fill))
}

// Circle implements Canvas.
func (p *PDF) Circle(x, y, radius float64, fill bool) {
	p.fpdf.Circle(x, y, radius, drawStyle(fill))
}

// Barcode implements Canvas. The code is rasterized as Code128, embedded
// once per document and reused on repeated draws of the same code.
func (p *PDF) Barcode(code string, x, y, w, h float64) error {
	bc, err := code128.Encode(code)
	if err != nil {
		return fmt.Errorf("canvas: encoding barcode %q: %w", code, err)
	}
	scaled, err := barcode.Scale(bc, int(w*barcodeScale), int(h*barcodeScale))
	if err != nil {
		return fmt.Errorf("canvas: scaling barcode %q: %w", code, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return fmt.Errorf("canvas: rasterizing barcode %q: %w", code, err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := "code128:" + code
	p.fpdf.RegisterImageOptionsReader(name, opts, &buf)
	p.fpdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return p.err()
}

// Output serializes the document to w. Nothing is written when the
// underlying surface is in an error state.
func (p *PDF) Output(w io.Writer) error {
	if err := p.err(); err != nil {
		return err
	}
	return p.fpdf.Output(w)
}

func (p *PDF) err() error {
	if p.fpdf.Err() {
		return p.fpdf.Error()
	}
	return nil
}

func drawStyle(fill bool) string {
	if fill {
		return "F"
	}
	return "D"
}
