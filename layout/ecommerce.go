package layout

import (
	"strconv"
	"strings"

	"github.com/gourav-1711/docs-genrator/canvas"
	"github.com/gourav-1711/docs-genrator/model"
)

// EcommerceBill draws the modern dark/gold invoice into region r. The
// palette is fixed; the classic color setting has no effect here.
func EcommerceBill(cv canvas.Canvas, shop *model.ShopIdentity, region *model.BillRegion, r Rect) error {
	// Frame: gold outer, light inner.
	cv.SetDrawColor(ecom.Gold)
	cv.SetLineWidth(0.8)
	cv.Rect(r.X, r.Y, r.W, r.H, false)
	cv.SetDrawColor(ecom.Border)
	cv.SetLineWidth(0.2)
	cv.Rect(r.X+1.5, r.Y+1.5, r.W-3, r.H-3, false)

	// Dark header panel.
	panel := Rect{X: r.X + 2, Y: r.Y + 2, W: r.W - 4, H: 30}
	cv.SetFillColor(ecom.Dark)
	cv.Rect(panel.X, panel.Y, panel.W, panel.H, true)

	cv.SetFont("Helvetica", "B", 16)
	cv.SetTextColor(ecom.White)
	cv.Text(panel.X+6, panel.Y+11, shop.Name, canvas.AlignLeft)
	cv.SetFont("Helvetica", "", 8)
	cv.SetTextColor(ecom.Gold)
	cv.Text(panel.X+6, panel.Y+18, shop.Address, canvas.AlignLeft)
	cv.Text(panel.X+6, panel.Y+23, "Tel: "+strings.Join(shop.Phones, " | "), canvas.AlignLeft)

	right := panel.X + panel.W - 6
	cv.SetFont("Helvetica", "B", 22)
	cv.Text(right, panel.Y+13, "INVOICE", canvas.AlignRight)
	cv.SetFont("Helvetica", "", 10)
	cv.SetTextColor(ecom.White)
	cv.Text(right, panel.Y+19.5, "#"+region.BillNo, canvas.AlignRight)
	cv.SetFont("Helvetica", "", 8)
	cv.Text(right, panel.Y+24.5, "Date: "+region.Date, canvas.AlignRight)

	inset := 8.0
	y := panel.Y + panel.H + 10

	// Bill-to block.
	cv.SetFont("Helvetica", "B", 8)
	cv.SetTextColor(ecom.Dark)
	cv.Text(r.X+inset, y, "BILL TO:", canvas.AlignLeft)
	cv.SetDrawColor(ecom.Gold)
	cv.SetLineWidth(0.6)
	cv.Line(r.X+inset, y+1.2, r.X+inset+cv.TextWidth("BILL TO:"), y+1.2)
	y += 6

	cv.SetFont("Helvetica", "B", 12)
	cv.Text(r.X+inset, y, region.CustomerName, canvas.AlignLeft)
	y += 5
	cv.SetFont("Helvetica", "", 8)
	cv.SetTextColor(ecom.Muted)
	for _, line := range []string{region.CustomerAddress, region.CustomerPhone, region.CustomerEmail} {
		if line == "" {
			continue
		}
		cv.Text(r.X+inset, y, line, canvas.AlignLeft)
		y += 4.5
	}
	y += 4

	// Items.
	t := newItemTable(cv, r.X+inset, r.W-2*inset, []column{
		{title: "PRODUCT", align: canvas.AlignLeft},
		{title: "QTY", width: 18, align: canvas.AlignCenter},
		{title: "PRICE", width: 28, align: canvas.AlignRight},
		{title: "TOTAL", width: 30, align: canvas.AlignRight},
	})
	y = t.header(y, 8, ecom.HeaderBar, ecom.Dark, "Helvetica", false)

	const rowH = 9.0
	for i, it := range region.Items {
		if i%2 == 1 {
			cv.SetFillColor(ecom.RowTint)
			cv.Rect(r.X+inset, y, r.W-2*inset, rowH, true)
		}
		t.cells(y+5.8, []string{
			it.ProductName,
			strconv.Itoa(it.Quantity),
			rupees(it.Price),
			rupees(it.Total()),
		}, func(col int) {
			switch col {
			case 0, 3:
				cv.SetFont("Helvetica", "B", 9)
				cv.SetTextColor(ecom.Dark)
			default:
				cv.SetFont("Helvetica", "", 9)
				cv.SetTextColor(ecom.Muted)
			}
		})
		y += rowH
	}
	y += 6

	// Totals column.
	right = r.X + r.W - inset
	cv.SetFont("Helvetica", "", 8)
	cv.SetTextColor(ecom.Muted)
	cv.Text(right-40, y, "Subtotal:", canvas.AlignLeft)
	cv.Text(right, y, rupees(region.Subtotal()), canvas.AlignRight)
	y += 5
	if region.DeliveryCharge > 0 {
		cv.Text(right-40, y, "Delivery:", canvas.AlignLeft)
		cv.Text(right, y, rupees(region.DeliveryCharge), canvas.AlignRight)
		y += 5
	}

	boxW, boxH := 58.0, 10.0
	cv.SetFillColor(ecom.Dark)
	cv.RoundedRect(right-boxW, y-1, boxW, boxH, 1.5, true)
	cv.SetFont("Helvetica", "B", 8)
	cv.SetTextColor(ecom.White)
	cv.Text(right-boxW+3, y+5, "TOTAL", canvas.AlignLeft)
	cv.SetFont("Helvetica", "B", 12)
	cv.SetTextColor(ecom.Gold)
	cv.Text(right-3, y+5.3, rupees(region.GrandTotal()), canvas.AlignRight)

	// Footer anchored to the region bottom.
	footY := r.Y + r.H - 18
	cv.SetDrawColor(ecom.Border)
	cv.SetLineWidth(0.3)
	cv.Line(r.X+inset, footY, r.X+r.W-inset, footY)

	if region.BillNo != "" {
		if err := cv.Barcode(region.BillNo, r.X+inset, footY+2, 36, 7); err != nil {
			return err
		}
	}

	cv.SetFont("Helvetica", "I", 8)
	cv.SetTextColor(ecom.Muted)
	cv.Text(r.X+r.W/2, footY+6, "Thank you for your business!", canvas.AlignCenter)
	cv.SetFont("Helvetica", "", 8)
	cv.Text(r.X+r.W/2, footY+13, shop.Email, canvas.AlignCenter)

	cv.SetDrawColor(ecom.Border)
	cv.Line(right-40, footY+9, right, footY+9)
	cv.SetFont("Helvetica", "B", 7)
	cv.Text(right-20, footY+13, "Authorized Signature", canvas.AlignCenter)
	return nil
}
