package layout

import (
	"strings"

	"github.com/gourav-1711/docs-genrator/canvas"
)

// textOp is one recorded text run.
type textOp struct {
	X, Y  float64
	S     string
	Align canvas.Align
	Color canvas.RGB
	Font  string
	Style string
	Size  float64
}

// recorder is a Canvas that captures drawing calls for assertions.
type recorder struct {
	texts    []textOp
	barcodes []string
	colors   map[canvas.RGB]int

	curFont  string
	curStyle string
	curSize  float64
	curText  canvas.RGB
}

func newRecorder() *recorder {
	return &recorder{colors: make(map[canvas.RGB]int)}
}

func (r *recorder) SetFont(family, style string, size float64) {
	r.curFont, r.curStyle, r.curSize = family, style, size
}

func (r *recorder) SetTextColor(c canvas.RGB) { r.curText = c; r.colors[c]++ }
func (r *recorder) SetDrawColor(c canvas.RGB) { r.colors[c]++ }
func (r *recorder) SetFillColor(c canvas.RGB) { r.colors[c]++ }
func (r *recorder) SetLineWidth(float64) {}

func (r *recorder) Text(x, y float64, s string, align canvas.Align) {
	r.texts = append(r.texts, textOp{
		X: x, Y: y, S: s, Align: align,
		Color: r.curText, Font: r.curFont, Style: r.curStyle, Size: r.curSize,
	})
}

func (r *recorder) TextWidth(s string) float64 { return float64(len(s)) * 1.8 }

func (r *recorder) Line(x1, y1, x2, y2 float64)                 {}
func (r *recorder) Rect(x, y, w, h float64, fill bool)          {}
func (r *recorder) RoundedRect(x, y, w, h, rad float64, f bool) {}
func (r *recorder) Circle(x, y, rad float64, fill bool)         {}

func (r *recorder) Barcode(code string, x, y, w, h float64) error {
	r.barcodes = append(r.barcodes, code)
	return nil
}

// hasText reports whether any recorded run contains sub.
func (r *recorder) hasText(sub string) bool {
	for _, op := range r.texts {
		if strings.Contains(op.S, sub) {
			return true
		}
	}
	return false
}

// usedColor reports whether c was ever selected for text, draw or fill.
func (r *recorder) usedColor(c canvas.RGB) bool {
	return r.colors[c] > 0
}
