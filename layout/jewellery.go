package layout

import (
	"strconv"

	"github.com/gourav-1711/docs-genrator/canvas"
	"github.com/gourav-1711/docs-genrator/model"
)

// JewelleryBill draws the classic jewellery-shop bill into region r using
// the resolved classic palette.
func JewelleryBill(cv canvas.Canvas, shop *model.ShopIdentity, region *model.BillRegion, pal Palette, r Rect) {
	center := r.X + r.W/2

	// Watermark first, so every later fill and text run sits on top of it.
	cv.SetFont("Times", "B", r.H*0.85)
	cv.SetTextColor(pal.Secondary)
	cv.Text(center, r.Y+r.H/2+r.H*0.28, "JW", canvas.AlignCenter)

	doubleBorder(cv, r, pal.Primary, pal.Accent, 0.8, 8, 3)
	cornerDots(cv, r, pal.Primary, 5)

	inset := 6.0
	y := r.Y + 10

	// Phones flank the devotional tagline.
	cv.SetFont("Times", "B", 9)
	cv.SetTextColor(pal.Dark)
	cv.Text(r.X+inset, y, "Mo. "+shop.Phone(0), canvas.AlignLeft)
	cv.Text(r.X+r.W-inset, y, "Mo. "+shop.Phone(1), canvas.AlignRight)

	cv.SetTextColor(pal.Primary)
	cv.Text(center, y, "|| JAI SHREE SHYAM ||", canvas.AlignCenter)
	y += 12

	// Headline and decorative underline.
	cv.SetFont("Times", "B", 26)
	cv.Text(center, y, shop.Name, canvas.AlignCenter)
	y += 3
	cv.SetDrawColor(pal.Primary)
	cv.SetLineWidth(0.6)
	cv.Line(center-30, y, center+30, y)
	cv.SetLineWidth(0.2)
	cv.Line(center-45, y+1, center+45, y+1)
	y += 7

	// Tagline banner.
	bannerW, bannerH := 86.0, 7.0
	cv.SetFillColor(pal.Primary)
	cv.RoundedRect(center-bannerW/2, y-bannerH+2, bannerW, bannerH, 3.5, true)
	cv.SetFont("Times", "B", 9)
	cv.SetTextColor(canvas.RGB{R: 255, G: 255, B: 255})
	cv.Text(center, y, "* Gold & Silver Jewellery Experts *", canvas.AlignCenter)
	y += 8

	cv.SetFont("Times", "I", 10)
	cv.SetTextColor(pal.Dark)
	cv.Text(center, y, shop.Address, canvas.AlignCenter)
	y += 4
	cv.SetDrawColor(pal.Primary)
	cv.SetLineWidth(0.5)
	cv.Line(r.X+inset, y, r.X+r.W-inset, y)
	y += 8

	// Bill number and date.
	cv.SetFont("Times", "B", 11)
	cv.SetTextColor(pal.Primary)
	cv.Text(r.X+inset, y, "Bill No.", canvas.AlignLeft)
	cv.SetTextColor(pal.Dark)
	cv.Text(r.X+inset+17, y, region.BillNo, canvas.AlignLeft)
	cv.SetTextColor(pal.Primary)
	cv.Text(r.X+r.W-inset-30, y, "Date:", canvas.AlignRight)
	cv.SetTextColor(pal.Dark)
	cv.Text(r.X+r.W-inset, y, region.Date, canvas.AlignRight)
	y += 8

	// Customer block with dotted-rule styling.
	y = ruledField(cv, pal, r, y, "Mr./Ms.", region.CustomerName)
	y = ruledField(cv, pal, r, y, "Add.", region.CustomerAddress)
	if region.CustomerPhone != "" {
		y = ruledField(cv, pal, r, y, "Ph.", region.CustomerPhone)
	}
	y += 2

	// Items.
	t := newItemTable(cv, r.X+inset, r.W-2*inset, []column{
		{title: "NAME", align: canvas.AlignLeft},
		{title: "QTY", width: 18, align: canvas.AlignCenter},
		{title: "RATE", width: 26, align: canvas.AlignRight},
		{title: "AMOUNT", width: 30, align: canvas.AlignRight},
	})
	cv.SetDrawColor(pal.Primary)
	cv.SetLineWidth(0.4)
	y = t.header(y, 7, pal.Secondary, pal.Primary, "Times", true)

	for i, it := range region.Items {
		if i > 0 {
			cv.SetDrawColor(pal.Accent)
			cv.SetLineWidth(0.2)
			cv.Line(r.X+inset, y, r.X+r.W-inset, y)
		}
		rowH := 8.0
		if it.Description != "" {
			rowH = 11.5
		}
		base := y + 5.5
		t.cells(base, []string{
			it.ProductName,
			strconv.Itoa(it.Quantity),
			rupees(it.Price),
			rupees(it.Total()),
		}, func(col int) {
			switch col {
			case 0, 3:
				cv.SetFont("Times", "B", 10)
				cv.SetTextColor(pal.Dark)
			default:
				cv.SetFont("Times", "", 10)
				cv.SetTextColor(pal.Dark)
			}
		})
		if it.Description != "" {
			cv.SetFont("Times", "I", 8)
			cv.SetTextColor(pal.Primary)
			cv.Text(r.X+inset+2, base+4, it.Description, canvas.AlignLeft)
		}
		y += rowH
	}
	cv.SetDrawColor(pal.Primary)
	cv.SetLineWidth(0.4)
	cv.Line(r.X+inset, y, r.X+r.W-inset, y)
	y += 6

	// Totals.
	right := r.X + r.W - inset
	if region.DeliveryCharge > 0 {
		cv.SetFont("Times", "", 9)
		cv.SetTextColor(pal.Dark)
		cv.Text(right-34, y, "Subtotal", canvas.AlignRight)
		cv.SetFont("Times", "B", 10)
		cv.Text(right, y, rupees(region.Subtotal()), canvas.AlignRight)
		y += 6
		cv.SetFont("Times", "", 9)
		cv.Text(right-34, y, "Delivery", canvas.AlignRight)
		cv.SetFont("Times", "B", 10)
		cv.Text(right, y, rupees(region.DeliveryCharge), canvas.AlignRight)
		y += 6
	}

	boxW, boxH := 64.0, 9.0
	cv.SetFillColor(pal.Primary)
	cv.RoundedRect(right-boxW, y-1, boxW, boxH, 2, true)
	cv.SetFont("Times", "B", 8)
	cv.SetTextColor(canvas.RGB{R: 255, G: 255, B: 255})
	cv.Text(right-boxW+3, y+4.5, "GRAND TOTAL", canvas.AlignLeft)
	cv.SetFont("Times", "B", 11)
	cv.Text(right-3, y+4.7, rupees(region.GrandTotal()), canvas.AlignRight)

	// Signature block anchored to the region bottom.
	sigY := r.Y + r.H - 22
	cv.SetFont("Times", "B", 10)
	cv.SetTextColor(pal.Dark)
	cv.Text(right-30, sigY, "For "+shop.Name, canvas.AlignCenter)
	cv.SetDrawColor(pal.Primary)
	cv.SetLineWidth(0.5)
	cv.Line(right-58, sigY+9, right-2, sigY+9)
	cv.SetFont("Times", "B", 7)
	cv.Text(right-30, sigY+13, "AUTHORIZED SIGNATURE", canvas.AlignCenter)

	cv.SetFont("Times", "I", 8)
	cv.SetTextColor(pal.Primary)
	cv.Text(center, r.Y+r.H-6, "Thank you for your purchase. Visit again!", canvas.AlignCenter)
}

// ruledField draws a labelled value over a dotted-style rule and returns
// the y below it.
func ruledField(cv canvas.Canvas, pal Palette, r Rect, y float64, label, value string) float64 {
	inset := 6.0
	cv.SetFont("Times", "B", 11)
	cv.SetTextColor(pal.Primary)
	cv.Text(r.X+inset, y, label, canvas.AlignLeft)

	labelW := cv.TextWidth(label) + 3
	cv.SetFont("Times", "", 11)
	cv.SetTextColor(pal.Dark)
	cv.Text(r.X+inset+labelW+2, y, value, canvas.AlignLeft)

	cv.SetDrawColor(pal.Primary)
	cv.SetLineWidth(0.3)
	dottedLine(cv, r.X+inset+labelW, r.X+r.W-inset, y+1.5)
	return y + 8
}

// dottedLine approximates a dotted rule with short dashes.
func dottedLine(cv canvas.Canvas, x1, x2, y float64) {
	const dash, gap = 1.2, 1.0
	for x := x1; x < x2; x += dash + gap {
		end := x + dash
		if end > x2 {
			end = x2
		}
		cv.Line(x, y, end, y)
	}
}
