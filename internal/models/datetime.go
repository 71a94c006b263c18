package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateTimeLayout is the fixed wire format for every timestamp in the API.
// Values are persisted as timestamp without time zone.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a timestamp that marshals as "YYYY-MM-DD HH:MM:SS".
type DateTime struct {
	time.Time
}

// NewDateTime truncates t to second precision, matching the wire format.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.Truncate(time.Second)}
}

// ParseDateTime parses a wire-format timestamp string.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf(`timestamp must be in the format "YYYY-MM-DD HH:MM:SS"`)
	}
	return DateTime{t}, nil
}

func (d DateTime) String() string {
	return d.Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp must be a string")
	}
	parsed, err := ParseDateTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so pgx can populate DateTime from timestamp
// columns.
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}

// Value implements driver.Valuer for writes.
func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}
