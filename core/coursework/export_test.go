package coursework

import "time"

// SetNowFunc replaces the submission clock and returns a func restoring it.
func SetNowFunc(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}
