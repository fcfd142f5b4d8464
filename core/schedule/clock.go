package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04:05"

var clockLayouts = []string{clockLayout, "15:04", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// Clock is a time of day in seconds since midnight.
type Clock int

func NewClock(hour, min, sec int) Clock {
	return Clock(hour*3600 + min*60 + sec)
}

// ParseClock accepts "15:04", "15:04:05" or a full timestamp, of which only the time of day is kept.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewClock(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)%3600/60, int(c)%60)
}

func (c Clock) Valid() bool {
	return c >= 0 && c < 24*3600
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Clock) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*c = NewClock(v.Hour(), v.Minute(), v.Second())
		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	}
	return fmt.Errorf("schedule.Clock: cannot scan %T", value)
}

func (c *Clock) scanString(s string) error {
	// postgres may append fractional seconds
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}
