package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Period is the half-day marker of a 12-hour clock time.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// ClockTime is a 12-hour working-hours boundary. The zero value means
// "unset" and renders as a blank placeholder.
type ClockTime struct {
	Hour   int    // 1-12
	Minute int    // 0, 15, 30 or 45
	Period Period // AM or PM
}

// NewClockTime builds a validated ClockTime.
func NewClockTime(hour, minute int, p Period) (ClockTime, error) {
	if hour < 1 || hour > 12 {
		return ClockTime{}, fmt.Errorf("model: hour %d out of range 1-12", hour)
	}
	switch minute {
	case 0, 15, 30, 45:
	default:
		return ClockTime{}, fmt.Errorf("model: minute %d not a quarter-hour", minute)
	}
	if p != AM && p != PM {
		return ClockTime{}, fmt.Errorf("model: period %q must be AM or PM", p)
	}
	return ClockTime{Hour: hour, Minute: minute, Period: p}, nil
}

// IsZero reports whether the time is unset.
func (t ClockTime) IsZero() bool {
	return t.Hour == 0
}

// String renders the display form, e.g. "09:00 AM".
func (t ClockTime) String() string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d:%02d %s", t.Hour, t.Minute, t.Period)
}

// ParseClockTime parses the display form "HH:MM AM". An empty string
// yields the zero ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ClockTime{}, nil
	}
	var hour, minute int
	var period string
	if _, err := fmt.Sscanf(s, "%d:%d %s", &hour, &minute, &period); err != nil {
		return ClockTime{}, fmt.Errorf("model: parsing clock time %q: %w", s, err)
	}
	return NewClockTime(hour, minute, Period(strings.ToUpper(period)))
}

// MarshalJSON encodes the time as its display string.
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the display string form.
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
