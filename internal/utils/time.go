package util

import (
	"fmt"
	"time"
)

// LocalDateTime marshals as a zone-less timestamp in the display location.
type LocalDateTime struct {
	time.Time
}

const (
	layout     = "2006-01-02T15:04:05"
	longLayout = "January 02, 2006"
)

var location = time.UTC

// SetLocation changes the zone used for display. An empty name keeps UTC.
func SetLocation(name string) error {
	if name == "" {
		location = time.UTC
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load location %q: %w", name, err)
	}
	location = loc
	return nil
}

// LongDate renders t as "Month DD, YYYY".
func LongDate(t time.Time) string {
	return t.In(location).Format(longLayout)
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(location).Format(layout) + `"`), nil
}
