package layout

import (
	"fmt"

	"github.com/gourav-1711/docs-genrator/canvas"
	"github.com/gourav-1711/docs-genrator/model"
	"github.com/gourav-1711/docs-genrator/words"
)

const letterLineHeight = 7

// JobLetter draws the appointment letter onto one page. The page rect is
// the full sheet; margin is the distance to the decorative border.
func JobLetter(cv canvas.Canvas, doc *model.JobLetter, page Rect, margin float64) {
	border := Rect{
		X: page.X + margin,
		Y: page.Y + margin,
		W: page.W - 2*margin,
		H: page.H - 2*margin,
	}
	doubleBorder(cv, border, letterBorder, letterInner, 0.8, 12, 5)

	center := page.X + page.W/2
	headerY := page.Y + 35.0

	// Letterhead
	cv.SetFont("Times", "", 28)
	cv.SetTextColor(letterGold)
	cv.Text(center, headerY, doc.CompanyName, canvas.AlignCenter)

	cv.SetFont("Times", "", 11)
	cv.SetTextColor(letterMuted)
	cv.Text(center, headerY+8, doc.CompanyAddress, canvas.AlignCenter)
	cv.Text(center, headerY+14, "Email: "+doc.CompanyEmail, canvas.AlignCenter)

	cv.SetDrawColor(letterGold)
	cv.SetLineWidth(0.5)
	cv.Line(page.X+margin+10, headerY+20, page.X+page.W-margin-10, headerY+20)

	left := page.X + margin + 15
	y := headerY + 40.0
	const lh = float64(letterLineHeight)

	cv.SetTextColor(letterBody)
	cv.SetFont("Times", "", 12)

	// Recipient
	cv.Text(left, y, "To,", canvas.AlignLeft)
	y += lh
	cv.Text(left, y, "Name of Employee: "+orBlank(doc.EmployeeName, 21), canvas.AlignLeft)
	y += lh
	cv.Text(left, y, "Address: "+orBlank(doc.EmployeeAddress, 29), canvas.AlignLeft)
	y += lh * 2

	// Subject
	subject := "Subject: Appointment & Joining Confirmation Letter"
	cv.SetFont("Times", "B", 14)
	cv.SetTextColor(letterGold)
	cv.Text(left, y, subject, canvas.AlignLeft)
	cv.Line(left, y+1.2, left+cv.TextWidth(subject), y+1.2)
	y += lh * 2

	cv.SetFont("Times", "", 11)
	cv.SetTextColor(letterBody)

	// Salutation
	cv.Text(left, y, "Dear Mr/Ms: "+orBlank(doc.EmployeeName, 15), canvas.AlignLeft)
	y += lh * 1.5

	// Offer
	offer := fmt.Sprintf("We are pleased to offer the position of %s at %s.",
		orBlank(doc.Position, 12), doc.CompanyName)
	cv.Text(left, y, offer, canvas.AlignLeft)
	y += lh

	joining := blank(9) + " (Joining Date)"
	if doc.JoiningDate != "" {
		joining = longDate(doc.JoiningDate)
	}
	cv.Text(left, y, "You are required to join on "+joining+".", canvas.AlignLeft)
	y += lh

	if doc.AdditionalTasks != "" {
		cv.Text(left, y, "Additional responsibilities: "+doc.AdditionalTasks, canvas.AlignLeft)
		y += lh
	}
	y += lh * 0.5

	// Compensation
	cv.SetFont("Times", "B", 11)
	cv.Text(left, y, "Compensation:", canvas.AlignLeft)
	y += lh
	cv.SetFont("Times", "", 11)

	salaryDigits, salaryWords := blank(8), blank(12)
	if doc.MonthlySalary > 0 {
		salaryDigits = words.GroupDigits(float64(doc.MonthlySalary))
		salaryWords = words.AmountInWords(doc.MonthlySalary)
	}
	cv.Text(left, y, fmt.Sprintf("Monthly Salary: Rs. %s (%s)", salaryDigits, salaryWords), canvas.AlignLeft)
	y += lh * 1.5

	// Working hours
	cv.SetFont("Times", "B", 11)
	cv.Text(left, y, "Working Hours:", canvas.AlignLeft)
	y += lh
	cv.SetFont("Times", "", 11)

	if doc.WorkingHoursDescription != "" {
		cv.Text(left, y, doc.WorkingHoursDescription, canvas.AlignLeft)
		y += lh
	}
	from := orBlank(doc.WorkingHoursFrom.String(), 9)
	to := orBlank(doc.WorkingHoursTo.String(), 9)
	cv.Text(left, y, fmt.Sprintf("Timing: %s to %s", from, to), canvas.AlignLeft)
	y += lh

	weeklyOff := orBlank(doc.WeeklyOff1, 12)
	if doc.WeeklyOff2 != "" {
		weeklyOff += ", " + doc.WeeklyOff2
	}
	cv.Text(left, y, "Weekly Off: "+weeklyOff, canvas.AlignLeft)
	y += lh * 1.5

	// Probation
	probation := "_"
	if doc.ProbationMonths > 0 {
		probation = fmt.Sprintf("%d", doc.ProbationMonths)
	}
	cv.Text(left, y,
		fmt.Sprintf("You will be under probation for %s month(s) from the date of joining.", probation),
		canvas.AlignLeft)
	y += lh * 2

	// Closing
	cv.Text(left, y, "Sincerely,", canvas.AlignLeft)
	y += lh * 1.5
	cv.SetDrawColor(letterBody)
	cv.SetLineWidth(0.3)
	cv.Line(left, y, left+45, y)
	y += lh * 0.8
	cv.SetFont("Times", "B", 11)
	cv.Text(left, y, "Authorized Signatory", canvas.AlignLeft)
	y += lh
	cv.SetFont("Times", "", 11)
	cv.Text(left, y, doc.CompanyName, canvas.AlignLeft)
}
