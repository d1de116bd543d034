package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. Timeline
// entities schedule in whole days, so everything that crosses the
// boundary is normalized to UTC midnight before it is stored.
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar date.
func NewDate(t time.Time) Date {
	u := t.UTC()
	return Date{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateFromUnix converts Unix epoch seconds to a UTC calendar date,
// discarding the time of day.
func DateFromUnix(sec int64) Date {
	return NewDate(time.Unix(sec, 0))
}

// ParseDate accepts either a plain date ("2024-01-05") or an ISO-8601
// datetime with a trailing Z ("2024-01-05T00:00:00Z", "2024-01-05Z"),
// normalizes to UTC and truncates to the calendar date. Both encodings
// are in use by existing callers.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t), nil
	}
	// Bare date, optionally with the Z suffix some clients append.
	if t, err := time.Parse(dateLayout, strings.TrimSuffix(s, "Z")); err == nil {
		return NewDate(t), nil
	}
	return Date{}, fmt.Errorf("unparseable date %q", s)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so gorm stores the date portion only.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner, accepting the representations the
// postgres and sqlite drivers hand back for date columns.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// GormDataType keeps the column a plain date on every backend.
func (Date) GormDataType() string {
	return "date"
}
