// Package docsgen renders job appointment letters and shop bills to
// paginated PDF documents.
//
// Rendering is deterministic: the same document always serializes to the
// same bytes, so callers may retry freely and cache aggressively. Each
// call builds its own drawing surface; concurrent renders do not share
// state.
//
//	letter := model.DefaultJobLetter()
//	letter.EmployeeName = "Ravi Sharma"
//	pdf, name, err := docsgen.RenderJobLetter(&letter)
package docsgen

import (
	"bytes"
	"strings"

	"github.com/gourav-1711/docs-genrator/canvas"
	"github.com/gourav-1711/docs-genrator/compose"
	"github.com/gourav-1711/docs-genrator/model"
)

// RenderJobLetter renders the appointment letter and returns the PDF
// bytes with a suggested file name.
func RenderJobLetter(doc *model.JobLetter, opts ...Option) ([]byte, string, error) {
	cfg := newConfig(letterMargin, opts...)

	pdf := canvas.NewPDF(cfg.pageWidth, cfg.pageHeight)
	pdf.SetTitle("Appointment & Joining Confirmation Letter")
	pdf.AddPage()
	compose.JobLetter(pdf, doc, cfg.geometry())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", &RenderError{Doc: "job letter", Err: err}
	}
	return buf.Bytes(), letterFileName(doc.EmployeeName), nil
}

// RenderBill renders the bill with its configured template and region
// layout and returns the PDF bytes with a suggested file name.
func RenderBill(bill *model.Bill, opts ...Option) ([]byte, string, error) {
	cfg := newConfig(billMargin, opts...)

	pdf := canvas.NewPDF(cfg.pageWidth, cfg.pageHeight)
	pdf.SetTitle("Bill " + bill.BillNo)
	pdf.AddPage()
	if err := compose.Bill(pdf, bill, cfg.geometry()); err != nil {
		return nil, "", &RenderError{Doc: "bill", Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", &RenderError{Doc: "bill", Err: err}
	}
	return buf.Bytes(), billFileName(bill.BillNo), nil
}

func letterFileName(employeeName string) string {
	if employeeName == "" {
		return "Job_Letter.pdf"
	}
	return "Job_Letter_" + strings.Join(strings.Fields(employeeName), "_") + ".pdf"
}

func billFileName(billNo string) string {
	return "Bill_" + billNo + ".pdf"
}
