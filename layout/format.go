package layout

import (
	"strings"
	"time"

	"github.com/gourav-1711/docs-genrator/words"
)

// blank returns the fixed underscore run used in place of an empty field.
func blank(n int) string {
	return strings.Repeat("_", n)
}

// orBlank substitutes an underscore run of length n for an empty value.
func orBlank(s string, n int) string {
	if s == "" {
		return blank(n)
	}
	return s
}

// rupees renders an amount as "Rs. 12,34,567" with Indian digit grouping.
// Core PDF fonts have no rupee glyph, so the Rs. abbreviation stands in.
func rupees(amount float64) string {
	return "Rs. " + words.GroupDigits(amount)
}

// longDate formats an ISO date as "02 January 2006". Unparseable input is
// passed through as-is rather than dropped.
func longDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 January 2006")
}
