package layout

import (
	"strings"
	"testing"

	"github.com/gourav-1711/docs-genrator/model"
)

var testPage = Rect{X: 0, Y: 0, W: 210, H: 297}

func testShop() model.ShopIdentity {
	return model.ShopIdentity{
		Name:    "Jewellery Wala",
		Address: "Jhalamand Circle, Jodhpur",
		Phones:  []string{"9314651470", "9828182374"},
		Email:   "jewellerywalaonline@gmail.com",
	}
}

func testRegion() model.BillRegion {
	return model.BillRegion{
		BillNo:          "42",
		Date:            "2024-11-02",
		CustomerName:    "Ramesh Soni",
		CustomerAddress: "Sardarpura, Jodhpur",
		Items: []model.LineItem{
			{ProductName: "Gold Ring", Description: "22k, 4.2g", Quantity: 1, Price: 28500},
			{ProductName: "Silver Anklet", Quantity: 2, Price: 1850},
		},
	}
}

func TestJobLetterContent(t *testing.T) {
	rec := newRecorder()
	doc := model.DefaultJobLetter()
	doc.EmployeeName = "Ravi Sharma"
	doc.Position = "Sales Executive"
	doc.JoiningDate = "2024-07-01"
	doc.MonthlySalary = 15000
	doc.AdditionalTasks = "Inventory audit"
	doc.WeeklyOff2 = "Tuesday"

	JobLetter(rec, &doc, testPage, 15)

	for _, want := range []string{
		"Subject: Appointment & Joining Confirmation Letter",
		"Name of Employee: Ravi Sharma",
		"Dear Mr/Ms: Ravi Sharma",
		"We are pleased to offer the position of Sales Executive at Jewellery Wala.",
		"You are required to join on 01 July 2024.",
		"Additional responsibilities: Inventory audit",
		"Monthly Salary: Rs. 15,000 (Fifteen Thousand Rupees Only)",
		"Timing: 09:00 AM to 06:00 PM",
		"Weekly Off: Sunday, Tuesday",
		"You will be under probation for 3 month(s) from the date of joining.",
		"Authorized Signatory",
	} {
		if !rec.hasText(want) {
			t.Errorf("letter output missing %q", want)
		}
	}
}

func TestJobLetterBlankPlaceholders(t *testing.T) {
	rec := newRecorder()
	doc := model.JobLetter{CompanyName: "Jewellery Wala"}
	JobLetter(rec, &doc, testPage, 15)

	if !rec.hasText("Name of Employee: " + strings.Repeat("_", 21)) {
		t.Error("empty employee name must render the fixed underscore run")
	}
	if !rec.hasText("Address: " + strings.Repeat("_", 29)) {
		t.Error("empty address must render its own underscore run")
	}
	if !rec.hasText("(Joining Date)") {
		t.Error("unset joining date must render the placeholder suffix")
	}
	if !rec.hasText("probation for _ month(s)") {
		t.Error("zero probation months must render an underscore")
	}
	if rec.hasText("Additional responsibilities:") {
		t.Error("additional-tasks line must be omitted when empty")
	}
}

func TestJewelleryBillContent(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	region := testRegion()
	region.DeliveryCharge = 100

	JewelleryBill(rec, &shop, &region, ClassicPalette(model.ColorRed), testPage)

	for _, want := range []string{
		"|| JAI SHREE SHYAM ||",
		"Jewellery Wala",
		"* Gold & Silver Jewellery Experts *",
		"Mo. 9314651470",
		"Mo. 9828182374",
		"Ramesh Soni",
		"Gold Ring",
		"22k, 4.2g",
		"Rs. 28,500",
		"Subtotal",
		"GRAND TOTAL",
		"Rs. 32,300", // 28500 + 2*1850 + 100
		"For Jewellery Wala",
		"AUTHORIZED SIGNATURE",
	} {
		if !rec.hasText(want) {
			t.Errorf("jewellery bill missing %q", want)
		}
	}
}

func TestJewelleryWatermarkDrawnFirst(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	region := testRegion()
	JewelleryBill(rec, &shop, &region, ClassicPalette(model.ColorRed), testPage)

	if len(rec.texts) == 0 || rec.texts[0].S != "JW" {
		t.Fatal("watermark glyph must be the first text drawn")
	}
}

func TestJewelleryDeliveryRowOnlyWhenCharged(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	region := testRegion()
	JewelleryBill(rec, &shop, &region, ClassicPalette(model.ColorRed), testPage)

	if rec.hasText("Subtotal") || rec.hasText("Delivery") {
		t.Error("subtotal/delivery rows must be omitted at zero delivery charge")
	}
	if !rec.hasText("Rs. 32,200") {
		t.Error("grand total must still render")
	}
}

func TestJewelleryYellowThemeUsesNoRedValues(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	region := testRegion()
	JewelleryBill(rec, &shop, &region, ClassicPalette(model.ColorYellow), testPage)

	yellow, red := classicYellow, classicRed
	if !rec.usedColor(yellow.Primary) {
		t.Error("yellow primary never selected")
	}
	if rec.usedColor(red.Primary) || rec.usedColor(red.Secondary) || rec.usedColor(red.Accent) {
		t.Error("red palette values selected under the yellow theme")
	}
}

func TestJewelleryMissingSecondPhone(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	shop.Phones = shop.Phones[:1]
	region := testRegion()
	JewelleryBill(rec, &shop, &region, ClassicPalette(model.ColorRed), testPage)

	// The second slot renders with an empty number, not a panic.
	found := false
	for _, op := range rec.texts {
		if op.S == "Mo. " {
			found = true
		}
	}
	if !found {
		t.Error("missing second phone must render an empty slot")
	}
}

func TestEcommerceBillContent(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	region := testRegion()
	region.CustomerEmail = "ramesh@example.com"
	region.DeliveryCharge = 50

	if err := EcommerceBill(rec, &shop, &region, testPage); err != nil {
		t.Fatalf("EcommerceBill: %v", err)
	}

	for _, want := range []string{
		"INVOICE",
		"#42",
		"Date: 2024-11-02",
		"BILL TO:",
		"Ramesh Soni",
		"ramesh@example.com",
		"Tel: 9314651470 | 9828182374",
		"Subtotal:",
		"Delivery:",
		"TOTAL",
		"Thank you for your business!",
		"jewellerywalaonline@gmail.com",
		"Authorized Signature",
	} {
		if !rec.hasText(want) {
			t.Errorf("e-commerce bill missing %q", want)
		}
	}

	if len(rec.barcodes) != 1 || rec.barcodes[0] != "42" {
		t.Errorf("expected one bill-number barcode, got %v", rec.barcodes)
	}
}

func TestEcommerceSkipsDeliveryAndBarcodeWhenAbsent(t *testing.T) {
	rec := newRecorder()
	shop := testShop()
	region := testRegion()
	region.BillNo = ""

	if err := EcommerceBill(rec, &shop, &region, testPage); err != nil {
		t.Fatalf("EcommerceBill: %v", err)
	}
	if rec.hasText("Delivery:") {
		t.Error("delivery line rendered at zero charge")
	}
	if len(rec.barcodes) != 0 {
		t.Error("barcode rendered for empty bill number")
	}
}

func TestItemTableWidths(t *testing.T) {
	rec := newRecorder()
	tab := newItemTable(rec, 0, 100, []column{
		{title: "A"},
		{title: "B", width: 20},
		{title: "C", width: 30},
	})
	widths := tab.widths()
	if widths[0] != 50 || widths[1] != 20 || widths[2] != 30 {
		t.Errorf("widths = %v, want [50 20 30]", widths)
	}
}
