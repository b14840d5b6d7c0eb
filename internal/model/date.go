package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputDateLayout is the fixed layout for all interactive date entry.
	InputDateLayout = "02-01-2006"

	// wireDateLayout matches the timestamps in the persisted document.
	wireDateLayout = "2006-01-02T15:04:05"
)

// Date is a calendar date. The embedded time carries no meaningful
// time-of-day component; comparisons are inclusive day comparisons.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses user input in the dd-mm-yyyy layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(InputDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected dd-mm-yyyy", s)
	}
	return Date{Time: t.UTC()}, nil
}

// WithinRange reports whether d lies in [start, end], inclusive on both ends.
func (d Date) WithinRange(start, end Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}

// String renders the date in the interactive dd-mm-yyyy layout.
func (d Date) String() string {
	return d.Format(InputDateLayout)
}

// MarshalJSON writes the persisted-document timestamp form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(wireDateLayout) + `"`), nil
}

// UnmarshalJSON accepts the persisted timestamp form.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	t, err := time.Parse(wireDateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid stored date %q: %w", raw, err)
	}
	d.Time = t.UTC()
	return nil
}
