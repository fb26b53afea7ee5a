// Package compose partitions a page into bill regions and drives the
// layout templates over them.
package compose

import (
	"errors"
	"fmt"

	"github.com/gourav-1711/docs-genrator/canvas"
	"github.com/gourav-1711/docs-genrator/layout"
	"github.com/gourav-1711/docs-genrator/model"
)

// ErrUnknownTemplate reports a bill whose settings name a template no
// layout implements.
var ErrUnknownTemplate = errors.New("compose: unknown bill template")

// Geometry describes the target page in millimeters.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// regionGap separates the two stacked regions of a two-in-one page.
const regionGap = 6.0

// Regions returns the rectangles the bill regions print into, in page
// order: the full content area, or two equal stacked halves minus the gap.
func Regions(g Geometry, twoInOne bool) []layout.Rect {
	content := layout.Rect{
		X: g.Margin,
		Y: g.Margin,
		W: g.PageWidth - 2*g.Margin,
		H: g.PageHeight - 2*g.Margin,
	}
	if !twoInOne {
		return []layout.Rect{content}
	}
	halfH := (content.H - regionGap) / 2
	return []layout.Rect{
		{X: content.X, Y: content.Y, W: content.W, H: halfH},
		{X: content.X, Y: content.Y + halfH + regionGap, W: content.W, H: halfH},
	}
}

// Bill renders every region of the bill onto the already-open page.
func Bill(cv canvas.Canvas, bill *model.Bill, g Geometry) error {
	rects := Regions(g, bill.Settings.TwoInOne)
	regions := bill.Regions()
	for i, rect := range rects {
		region := regions[i]
		switch bill.Settings.Template {
		case model.TemplateEcommerce:
			if err := layout.EcommerceBill(cv, &bill.ShopDetails, region, rect); err != nil {
				return fmt.Errorf("compose: region %d: %w", i+1, err)
			}
		case model.TemplateJewellery, "":
			pal := layout.ClassicPalette(bill.Settings.ClassicColor)
			layout.JewelleryBill(cv, &bill.ShopDetails, region, pal, rect)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownTemplate, bill.Settings.Template)
		}
	}
	return nil
}

// JobLetter renders the appointment letter onto the already-open page.
func JobLetter(cv canvas.Canvas, doc *model.JobLetter, g Geometry) {
	page := layout.Rect{W: g.PageWidth, H: g.PageHeight}
	layout.JobLetter(cv, doc, page, g.Margin)
}
