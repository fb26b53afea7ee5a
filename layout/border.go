package layout

import "github.com/gourav-1711/docs-genrator/canvas"

// doubleBorder draws an outer and inner frame around r with corner
// ornaments: an L-shaped flourish in each corner.
func doubleBorder(cv canvas.Canvas, r Rect, outer, inner canvas.RGB, outerW, armLen, inset float64) {
	cv.SetDrawColor(outer)
	cv.SetLineWidth(outerW)
	cv.Rect(r.X, r.Y, r.W, r.H, false)

	cv.SetDrawColor(inner)
	cv.SetLineWidth(0.2)
	cv.Rect(r.X+3, r.Y+3, r.W-6, r.H-6, false)

	cv.SetDrawColor(outer)
	cv.SetLineWidth(0.5)

	left, right := r.X+inset, r.X+r.W-inset
	top, bottom := r.Y+inset, r.Y+r.H-inset

	// top-left
	cv.Line(left, top+armLen, left, top)
	cv.Line(left, top, left+armLen, top)
	// top-right
	cv.Line(right, top+armLen, right, top)
	cv.Line(right-armLen, top, right, top)
	// bottom-left
	cv.Line(left, bottom-armLen, left, bottom)
	cv.Line(left, bottom, left+armLen, bottom)
	// bottom-right
	cv.Line(right, bottom-armLen, right, bottom)
	cv.Line(right-armLen, bottom, right, bottom)
}

// cornerDots puts a small filled circle just inside each corner ornament.
func cornerDots(cv canvas.Canvas, r Rect, c canvas.RGB, inset float64) {
	cv.SetFillColor(c)
	left, right := r.X+inset, r.X+r.W-inset
	top, bottom := r.Y+inset, r.Y+r.H-inset
	for _, pt := range [4][2]float64{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		cv.Circle(pt[0], pt[1], 0.8, true)
	}
}
