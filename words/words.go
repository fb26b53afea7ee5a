// Package words converts numeric amounts to English words and grouped
// digit strings using the Indian numbering system (crore, lakh, thousand).
package words

import "strings"

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
	hundred  = 100
)

// ToWords converts an integer to English words in the Indian numbering
// system. Zero yields "Zero"; negative values get a "Minus " prefix.
func ToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + ToWords(-n)
	}

	var b strings.Builder
	if n/crore > 0 {
		b.WriteString(ToWords(n / crore))
		b.WriteString(" Crore ")
		n %= crore
	}
	if n/lakh > 0 {
		b.WriteString(ToWords(n / lakh))
		b.WriteString(" Lakh ")
		n %= lakh
	}
	if n/thousand > 0 {
		b.WriteString(ToWords(n / thousand))
		b.WriteString(" Thousand ")
		n %= thousand
	}
	if n/hundred > 0 {
		b.WriteString(ToWords(n / hundred))
		b.WriteString(" Hundred ")
		n %= hundred
	}
	if n > 0 {
		if n < 20 {
			b.WriteString(ones[n])
		} else {
			b.WriteString(tens[n/10])
			if n%10 > 0 {
				b.WriteString(" ")
				b.WriteString(ones[n%10])
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// AmountInWords renders a rupee amount as words with the "Rupees Only"
// suffix. Zero is special-cased so it never reads "Zero Zero Rupees Only".
func AmountInWords(amount int64) string {
	if amount == 0 {
		return "Zero Rupees Only"
	}
	return ToWords(amount) + " Rupees Only"
}

// GroupDigits formats a non-negative amount with Indian digit grouping:
// the last three digits form one group, every pair before them another
// (1234567 -> "12,34,567"). Whole amounts carry no decimals; fractional
// amounts are rendered with two.
func GroupDigits(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(amount*100 + 0.5)
	whole, rem := cents/100, cents%100

	s := groupInt(whole)
	if rem > 0 {
		s += "." + string([]byte{byte('0' + rem/10), byte('0' + rem%10)})
	}
	if neg {
		s = "-" + s
	}
	return s
}

func groupInt(n int64) string {
	digits := []byte{}
	if n == 0 {
		digits = append(digits, '0')
	}
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	// digits are reversed; insert separators after the 3rd digit from the
	// right, then after every 2nd.
	var b strings.Builder
	ln := len(digits)
	for i := ln - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i == 3 || (i > 3 && (i-3)%2 == 0) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
