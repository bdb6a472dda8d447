package types

import (
	"database/sql/driver"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const dateLayout = "2006-01-02"

// Date is a day-precision value backing DATE columns (due dates, review
// dates). It serializes as "2006-01-02" rather than a full timestamp.
type Date struct {
	t time.Time
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to day precision.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, goerr.Wrap(err, "invalid date", goerr.V("value", s))
	}
	return Date{t: t}, nil
}

func (x Date) Time() time.Time {
	return x.t
}

func (x Date) IsZero() bool {
	return x.t.IsZero()
}

// Before reports whether x is an earlier day than other.
func (x Date) Before(other Date) bool {
	return x.t.Before(other.t)
}

func (x Date) String() string {
	return x.t.Format(dateLayout)
}

// Scan implements sql.Scanner. The MySQL driver hands back time.Time when
// parseTime is enabled and raw bytes otherwise.
func (x *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		x.t = time.Time{}
		return nil
	case time.Time:
		x.t = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		d, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		x.t = d.t
		return nil
	case string:
		d, err := ParseDate(v)
		if err != nil {
			return err
		}
		x.t = d.t
		return nil
	default:
		return goerr.New("unsupported date source type", goerr.V("value", value))
	}
}

// Value implements driver.Valuer.
func (x Date) Value() (driver.Value, error) {
	return x.t.Format(dateLayout), nil
}

func (x Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.t.Format(dateLayout) + `"`), nil
}

func (x *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		x.t = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return goerr.New("invalid date JSON", goerr.V("value", string(data)))
	}
	d, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	x.t = d.t
	return nil
}
