package types

import (
	"strings"
	"time"
)

// Date is a point in time that clients may supply either as a full RFC 3339
// timestamp or as a bare "2006-01-02" date. It exists purely for flexible
// JSON decoding; storage and arithmetic use the underlying time.Time.
type Date time.Time

// DateOf wraps a time instant.
func DateOf(t time.Time) Date {
	return Date(t)
}

// Time returns the underlying time instant.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if fullDatePattern.MatchString(value) {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = Date(t)
	return nil
}
