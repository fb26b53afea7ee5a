package model

// Template selects which bill layout renders the document.
type Template string

const (
	TemplateJewellery Template = "jewellery"
	TemplateEcommerce Template = "ecommerce"
)

// ClassicColor selects the jewellery template palette.
type ClassicColor string

const (
	ColorRed    ClassicColor = "red"
	ColorYellow ClassicColor = "yellow"
)

// BillMode controls what the second region shows in two-up printing.
type BillMode string

const (
	ModeDuplicate BillMode = "duplicate"
	ModeDistinct  BillMode = "distinct"
)

// LineItem is one billed product row.
type LineItem struct {
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Total is the line amount, quantity times unit price.
func (it LineItem) Total() float64 {
	return float64(it.Quantity) * it.Price
}

// BillRegion is one self-contained printed bill: its number, customer and
// items. A Bill carries one inline plus an optional second region.
type BillRegion struct {
	BillNo          string     `json:"billNo"`
	Date            string     `json:"date"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	CustomerEmail   string     `json:"customerEmail,omitempty"`
	CustomerPhone   string     `json:"customerPhone,omitempty"`
	Items           []LineItem `json:"items"`
	DeliveryCharge  float64    `json:"deliveryCharge"`
}

// Subtotal sums the line totals over all items.
func (r *BillRegion) Subtotal() float64 {
	var sum float64
	for _, it := range r.Items {
		sum += it.Total()
	}
	return sum
}

// GrandTotal is the subtotal plus the delivery charge.
func (r *BillRegion) GrandTotal() float64 {
	return r.Subtotal() + r.DeliveryCharge
}

// AddItem appends a line item.
func (r *BillRegion) AddItem(it LineItem) {
	r.Items = append(r.Items, it)
}

// RemoveItem deletes the item at index i. The last remaining item cannot
// be removed; a bill always has at least one row.
func (r *BillRegion) RemoveItem(i int) bool {
	if len(r.Items) <= 1 || i < 0 || i >= len(r.Items) {
		return false
	}
	r.Items = append(r.Items[:i], r.Items[i+1:]...)
	return true
}

// SetDeliveryCharge sets the delivery charge, clamping negatives to zero.
func (r *BillRegion) SetDeliveryCharge(charge float64) {
	if charge < 0 {
		charge = 0
	}
	r.DeliveryCharge = charge
}

// ShopIdentity is the issuing shop's letterhead data.
type ShopIdentity struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Phones  []string `json:"phones"`
	Email   string   `json:"email"`
}

// Phone returns the i-th phone number, or "" when absent.
func (s *ShopIdentity) Phone(i int) string {
	if i < 0 || i >= len(s.Phones) {
		return ""
	}
	return s.Phones[i]
}

// RenderSettings selects the template, palette and page layout of a bill.
type RenderSettings struct {
	Template     Template     `json:"template"`
	ClassicColor ClassicColor `json:"classicColor,omitempty"` // jewellery only; default red
	TwoInOne     bool         `json:"twoInOne"`
	Mode         BillMode     `json:"mode,omitempty"` // meaningful when TwoInOne; default duplicate
}

// Bill is a complete bill document: the primary region inline, the shop
// identity, render settings, and an optional independently-authored
// second region used in distinct two-up mode.
type Bill struct {
	BillRegion

	ShopDetails ShopIdentity   `json:"shopDetails"`
	Settings    RenderSettings `json:"settings"`
	SecondBill  *BillRegion    `json:"secondBill,omitempty"`
}

// DefaultBill returns a jewellery-template bill with the stock shop
// identity and a single blank item row.
func DefaultBill() Bill {
	return Bill{
		BillRegion: BillRegion{
			Items: []LineItem{{Quantity: 1}},
		},
		ShopDetails: ShopIdentity{
			Name:    "Jewellery Wala",
			Address: "Jhalamand Circle, Jodhpur",
			Phones:  []string{"9314651470", "9828182374"},
			Email:   "jewellerywalaonline@gmail.com",
		},
		Settings: RenderSettings{
			Template:     TemplateJewellery,
			ClassicColor: ColorRed,
			Mode:         ModeDuplicate,
		},
	}
}

// Regions returns the bill regions to print in page order. With two-in-one
// off it is just the primary region. Distinct mode uses the second region
// when one is authored; duplicate mode, or distinct without a second bill,
// repeats the primary.
func (b *Bill) Regions() []*BillRegion {
	if !b.Settings.TwoInOne {
		return []*BillRegion{&b.BillRegion}
	}
	if b.Settings.Mode == ModeDistinct && b.SecondBill != nil {
		return []*BillRegion{&b.BillRegion, b.SecondBill}
	}
	return []*BillRegion{&b.BillRegion, &b.BillRegion}
}
