package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Date is a calendar date transmitted as ISO-8601 "YYYY-MM-DD". An empty or
// null JSON value unmarshals to an invalid (absent) Date, which is stored as
// SQL NULL.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a valid Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// UnmarshalJSON parses "YYYY-MM-DD"; "" and null become the absent value.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a JSON string in YYYY-MM-DD format")
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", s, err)
	}
	*d = Date{Time: t, Valid: true}
	return nil
}

// MarshalJSON renders "YYYY-MM-DD" or null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// Scan implements sql.Scanner so pgx can scan DATE columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v, Valid: true}
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Date: %w", v, err)
		}
		*d = Date{Time: t, Valid: true}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time, nil
}

// String returns the ISO-8601 form, or "" when absent.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// TimeOfDay is a wall-clock time transmitted as ISO-8601 "HH:MM:SS".
type TimeOfDay struct {
	Time  time.Time
	Valid bool
}

// NewTimeOfDay builds a valid TimeOfDay from hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC), Valid: true}
}

func parseTimeOfDay(s string) (time.Time, error) {
	// Accept HH:MM:SS and the shorter HH:MM form
	for _, layout := range []string{timeLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q", s)
}

// UnmarshalJSON parses "HH:MM:SS"; "" and null become the absent value.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = TimeOfDay{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("time must be a JSON string in HH:MM:SS format")
	}
	parsed, err := parseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = TimeOfDay{Time: parsed, Valid: true}
	return nil
}

// MarshalJSON renders "HH:MM:SS" or null.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(timeLayout) + `"`), nil
}

// Scan implements sql.Scanner so pgx can scan TIME columns.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = TimeOfDay{Time: v, Valid: true}
		return nil
	case string:
		parsed, err := parseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = TimeOfDay{Time: parsed, Valid: true}
		return nil
	case []byte:
		return t.Scan(string(v))
	case int64:
		// Microseconds since midnight, the pgx binary representation
		*t = TimeOfDay{Time: time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(v) * time.Microsecond), Valid: true}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// Value implements driver.Valuer. The textual form lets PostgreSQL cast it
// to the TIME column type.
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.Format(timeLayout), nil
}

// String returns the ISO-8601 form, or "" when absent.
func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(timeLayout)
}
