package dto

import (
	"fmt"
	"strings"
	"time"
)

// flexTimeLayouts are the accepted input formats, most specific first. The
// frontend's datetime-local inputs send minute precision without a zone.
var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FlexTime is a time.Time that unmarshals from any of the accepted layouts.
// Zone-less inputs are interpreted as UTC.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range flexTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date format: %q", s)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.UTC().Format(time.RFC3339) + `"`), nil
}

// TimePtr returns the wrapped time, or nil for a nil receiver.
func (t *FlexTime) TimePtr() *time.Time {
	if t == nil {
		return nil
	}
	tt := t.Time
	return &tt
}
