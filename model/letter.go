// Package model defines the document structures the renderer consumes:
// job appointment letters and bills, with their shared sub-structures.
//
// Values are owned by value and updated through explicit methods so the
// structural invariants (non-empty item lists, valid weekday names) hold
// at the mutation boundary. String fields default to empty and render as
// blank placeholders; the renderer never rejects an incomplete document.
package model

import "fmt"

// Weekdays lists valid weekly-off day names, Sunday first.
var Weekdays = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday",
}

// JobLetter is an appointment and joining confirmation letter.
type JobLetter struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanyEmail   string `json:"companyEmail"`

	EmployeeName    string `json:"employeeName"`
	EmployeeAddress string `json:"employeeAddress"`
	Position        string `json:"position"`

	// JoiningDate is an ISO calendar date ("2006-01-02"), empty when unset.
	JoiningDate   string `json:"joiningDate"`
	MonthlySalary int64  `json:"monthlySalary"` // rupees; 0 means unset

	WorkingHoursDescription string    `json:"workingHoursDescription"`
	WorkingHoursFrom        ClockTime `json:"workingHoursFrom"`
	WorkingHoursTo          ClockTime `json:"workingHoursTo"`
	WeeklyOff1              string    `json:"weeklyOff1"`
	WeeklyOff2              string    `json:"weeklyOff2"` // empty = none

	ProbationMonths int    `json:"probationMonths"`
	AdditionalTasks string `json:"additionalTasks"`
}

// DefaultJobLetter returns a letter pre-filled with the stock company
// identity and working pattern.
func DefaultJobLetter() JobLetter {
	return JobLetter{
		CompanyName:      "Jewellery Wala",
		CompanyAddress:   "Jhalamand Circle, Jodhpur",
		CompanyEmail:     "jewellerywalaonline@gmail.com",
		WorkingHoursFrom: ClockTime{Hour: 9, Minute: 0, Period: AM},
		WorkingHoursTo:   ClockTime{Hour: 6, Minute: 0, Period: PM},
		WeeklyOff1:       Weekdays[0],
		ProbationMonths:  3,
	}
}

// SetWeeklyOffs sets the weekly off days. The first day is required and
// both must be valid weekday names; the second may be empty for "none".
// The two days are not required to differ.
func (j *JobLetter) SetWeeklyOffs(first, second string) error {
	if !validWeekday(first) {
		return fmt.Errorf("model: %q is not a weekday name", first)
	}
	if second != "" && !validWeekday(second) {
		return fmt.Errorf("model: %q is not a weekday name", second)
	}
	j.WeeklyOff1 = first
	j.WeeklyOff2 = second
	return nil
}

func validWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
