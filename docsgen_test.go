package docsgen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gourav-1711/docs-genrator/compose"
	"github.com/gourav-1711/docs-genrator/model"
)

func TestRenderJobLetter(t *testing.T) {
	letter := model.DefaultJobLetter()
	letter.EmployeeName = "Ravi Kumar Sharma"

	pdf, name, err := RenderJobLetter(&letter)
	if err != nil {
		t.Fatalf("RenderJobLetter: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if name != "Job_Letter_Ravi_Kumar_Sharma.pdf" {
		t.Errorf("file name = %q", name)
	}
}

func TestRenderJobLetterBlankName(t *testing.T) {
	letter := model.DefaultJobLetter()
	_, name, err := RenderJobLetter(&letter)
	if err != nil {
		t.Fatalf("RenderJobLetter: %v", err)
	}
	if name != "Job_Letter.pdf" {
		t.Errorf("file name = %q", name)
	}
}

func TestRenderJobLetterDeterministic(t *testing.T) {
	letter := model.DefaultJobLetter()
	letter.EmployeeName = "Ravi Sharma"
	letter.MonthlySalary = 15000

	a, _, err := RenderJobLetter(&letter)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	b, _, err := RenderJobLetter(&letter)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("renders of the same letter differ")
	}
}

func TestRenderBill(t *testing.T) {
	bill := model.DefaultBill()
	bill.BillNo = "101"
	bill.Date = "2024-07-01"
	bill.CustomerName = "Sunita Devi"
	bill.Items = []model.LineItem{
		{ProductName: "Gold Ring", Quantity: 1, Price: 21500},
		{ProductName: "Silver Anklet", Quantity: 2, Price: 1800},
	}

	pdf, name, err := RenderBill(&bill)
	if err != nil {
		t.Fatalf("RenderBill: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if name != "Bill_101.pdf" {
		t.Errorf("file name = %q", name)
	}
}

func TestRenderBillEcommerceTwoUp(t *testing.T) {
	bill := model.DefaultBill()
	bill.BillNo = "INV-2024-001"
	bill.CustomerName = "Amit Verma"
	bill.Items = []model.LineItem{{ProductName: "Chain", Quantity: 1, Price: 5400}}
	bill.Settings.Template = model.TemplateEcommerce
	bill.Settings.TwoInOne = true
	bill.Settings.Mode = model.ModeDuplicate

	pdf, _, err := RenderBill(&bill)
	if err != nil {
		t.Fatalf("RenderBill: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderBillUnknownTemplate(t *testing.T) {
	bill := model.DefaultBill()
	bill.Settings.Template = "parchment"

	_, _, err := RenderBill(&bill)
	if err == nil {
		t.Fatal("expected an error for an unknown template")
	}
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %T, want *RenderError", err)
	}
	if !errors.Is(err, compose.ErrUnknownTemplate) {
		t.Errorf("err = %v, want to wrap ErrUnknownTemplate", err)
	}
}

func TestRenderBillCustomPage(t *testing.T) {
	bill := model.DefaultBill()
	bill.BillNo = "7"
	bill.Items = []model.LineItem{{ProductName: "Ring", Quantity: 1, Price: 100}}

	pdf, _, err := RenderBill(&bill, WithPageSize(148, 210), WithMargin(6))
	if err != nil {
		t.Fatalf("RenderBill: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
