package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// LocalDateTimeLayout is the ISO local date-time used on the wire, without zone or offset
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a timestamp without a zone. It is held in UTC and encoded
// as "2006-01-02T15:04:05" in JSON.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime normalizes t to UTC
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.UTC()}
}

// MarshalJSON implements json.Marshaler
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(LocalDateTimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("local date-time must be a string: %w", err)
	}

	parsed, err := time.ParseInLocation(LocalDateTimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("local date-time must match %s: %w", LocalDateTimeLayout, err)
	}
	t.Time = parsed
	return nil
}
