// Package biztime centralizes wall-clock access. Everything is stored and
// transported in UTC.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UnixMilli returns the current time as milliseconds since the epoch, the
// unit used by event payload timestamps.
func UnixMilli() int64 {
	return time.Now().UnixMilli()
}
