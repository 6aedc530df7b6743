package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	looseDateLayout = "2006-1-2"
)

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

// ParseDate accepts ISO 8601 calendar dates, tolerating single-digit month and day.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(looseDateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{t}, nil
}

// OptionalDate treats a zero date as absent.
func OptionalDate(d *Date) *Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
