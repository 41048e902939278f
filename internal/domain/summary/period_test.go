package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPeriod_FirstHalf(t *testing.T) {
	p := NewPeriod(2026, time.March, FirstHalf)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, FirstHalf, p.Half())
}

func TestNewPeriod_SecondHalfEndsOnLastDay(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		lastDay int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}

	for _, tt := range tests {
		p := NewPeriod(tt.year, tt.month, SecondHalf)
		assert.Equal(t, 16, p.Start.Day(), "%v %d", tt.month, tt.year)
		assert.Equal(t, tt.lastDay, p.End.Day(), "%v %d", tt.month, tt.year)
		assert.Equal(t, tt.month, p.End.Month(), "%v %d", tt.month, tt.year)
		assert.Equal(t, SecondHalf, p.Half())
	}
}

func TestPeriodOf(t *testing.T) {
	first := PeriodOf(time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, FirstHalf, first.Half())

	second := PeriodOf(time.Date(2026, time.May, 16, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, SecondHalf, second.Half())
	assert.Equal(t, 31, second.End.Day())
}

func TestPeriod_Contains(t *testing.T) {
	p := NewPeriod(2026, time.March, FirstHalf)

	assert.True(t, p.Contains(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)))

	// Only the calendar day matters
	assert.True(t, p.Contains(time.Date(2026, time.March, 15, 23, 59, 0, 0, time.Local)))
}

func TestPeriod_String(t *testing.T) {
	p := NewPeriod(2026, time.February, SecondHalf)
	assert.Equal(t, "2026-02-16 / 2026-02-28", p.String())
}
