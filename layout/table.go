package layout

import "github.com/gourav-1711/docs-genrator/canvas"

// column defines one item-table column. A zero width means the column
// absorbs the space the fixed columns leave over.
type column struct {
	title string
	width float64
	align canvas.Align
}

// itemTable draws the item grids of both bill templates: a styled header
// band followed by rows of cells, with either separator rules or
// alternating background tints between rows.
type itemTable struct {
	cv      canvas.Canvas
	cols    []column
	x, w    float64
	padding float64
}

func newItemTable(cv canvas.Canvas, x, w float64, cols []column) *itemTable {
	return &itemTable{cv: cv, cols: cols, x: x, w: w, padding: 2}
}

// widths resolves column widths, distributing leftover space across the
// auto columns.
func (t *itemTable) widths() []float64 {
	out := make([]float64, len(t.cols))
	fixed, auto := 0.0, 0
	for i, c := range t.cols {
		if c.width > 0 {
			out[i] = c.width
			fixed += c.width
		} else {
			auto++
		}
	}
	if auto > 0 {
		remaining := t.w - fixed
		if remaining < 0 {
			remaining = 0
		}
		for i, c := range t.cols {
			if c.width == 0 {
				out[i] = remaining / float64(auto)
			}
		}
	}
	return out
}

// cellX returns the anchor x for cell i given its alignment.
func (t *itemTable) cellX(widths []float64, i int, align canvas.Align) float64 {
	x := t.x
	for j := 0; j < i; j++ {
		x += widths[j]
	}
	switch align {
	case canvas.AlignCenter:
		return x + widths[i]/2
	case canvas.AlignRight:
		return x + widths[i] - t.padding
	default:
		return x + t.padding
	}
}

// header draws the title band at y and returns the y below it.
func (t *itemTable) header(y, h float64, fill, text canvas.RGB, font string, ruled bool) float64 {
	t.cv.SetFillColor(fill)
	t.cv.Rect(t.x, y, t.w, h, true)
	if ruled {
		t.cv.Line(t.x, y, t.x+t.w, y)
		t.cv.Line(t.x, y+h, t.x+t.w, y+h)
	}
	t.cv.SetTextColor(text)
	t.cv.SetFont(font, "B", 8.5)
	base := y + h/2 + 1.3
	widths := t.widths()
	for i, c := range t.cols {
		t.cv.Text(t.cellX(widths, i, c.align), base, c.title, c.align)
	}
	return y + h
}

// cells draws one row of already-formatted cell strings with the current
// font and color applied per cell by the caller-supplied style func.
func (t *itemTable) cells(y float64, values []string, style func(i int)) {
	widths := t.widths()
	for i, v := range values {
		if i >= len(t.cols) {
			break
		}
		style(i)
		t.cv.Text(t.cellX(widths, i, t.cols[i].align), y, v, t.cols[i].align)
	}
}
