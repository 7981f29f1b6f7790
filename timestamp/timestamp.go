// Package timestamp parses the fixed logger timestamp format shared by
// the TMS climate files and the dendrometer files.
//
// Dendrometer loggers record wall-clock UTC; ParseUTC converts a reading
// into the study-site zone and returns the naive local time. The climate
// files are grouped on their recorded clock as-is, so ParseNaive performs
// no conversion. Both stages go through this package so the asymmetry is
// visible in one place.
package timestamp

import (
	"fmt"
	"time"
)

// Layout is the logger timestamp format, e.g. "2023.07.04 16:00".
const Layout = "2006.01.02 15:04"

// ParseError reports a timestamp string that does not match Layout. A
// malformed timestamp is a data-quality failure of the whole file, not a
// skippable row.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseUTC interprets s as a UTC wall-clock reading, converts it into
// loc, and returns the naive local time (the zone is implied, not
// stored: the result carries UTC as its location so formatting never
// emits an offset).
func ParseUTC(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC), nil
}

// ParseNaive parses s without any timezone conversion. The climate
// summarizer groups readings on the clock the logger recorded.
func ParseNaive(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	return t, nil
}

// Date formats t as the calendar-date grouping key, e.g. "2023-07-04".
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}
