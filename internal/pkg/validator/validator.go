package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var clockRegex = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// Clock is a wall-clock time of day in "HH:MM" form.
// Hour 24 is allowed only as "24:00" and denotes midnight at the end
// of the day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string. Hours run from 0 to 24; the
// 24th hour is only valid with zero minutes.
func ParseClock(s string) (Clock, bool) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 24 || minute > 59 {
		return Clock{}, false
	}
	if hour == 24 && minute != 0 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// IsValidClock checks if a string is a well-formed "HH:MM" time.
func IsValidClock(s string) bool {
	_, ok := ParseClock(s)
	return ok
}

// Minutes returns the clock time as minutes since 00:00.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// NormalizedHour returns the hour with 24 folded back to 0.
func (c Clock) NormalizedHour() int {
	if c.Hour == 24 {
		return 0
	}
	return c.Hour
}

type Date time.Time

// ParseDate parses a date string in "YYYY-MM-DD" format and returns a Date type.
func ParseDate(dateStr string) (Date, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// Before reports whether the date d is before u.
func (d Date) Before(u Date) bool {
	return time.Time(d).Before(time.Time(u))
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
