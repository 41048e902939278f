package summary

import "errors"

var (
	ErrSummaryNotFound = errors.New("period summary not found")

	// ErrUnsupportedSplit marks a shift whose worked interval crosses
	// both the 06:00 and the 21:00 boundary, which the day/night hour
	// split cannot represent.
	ErrUnsupportedSplit = errors.New("shift crosses both day/night boundaries")
)
