package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date used in inputs and suggested filenames.
const DateLayout = "2006-01-02"

var dateLayouts = []string{DateLayout, time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

// Date is a calendar date or timestamp that accepts either an ISO date or an
// RFC 3339 timestamp. The zero value means "not provided".
type Date struct {
	time.Time
}

// ParseDate tries every accepted layout in order.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

// ISO returns the date portion in DateLayout, or "" for the zero value.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// HasClock reports whether a time of day was supplied.
func (d Date) HasClock() bool {
	return d.Hour() != 0 || d.Minute() != 0
}
