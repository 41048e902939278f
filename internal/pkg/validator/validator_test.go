package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantOK     bool
	}{
		{"00:00", 0, 0, true},
		{"08:30", 8, 30, true},
		{"8:30", 8, 30, true},
		{"21:00", 21, 0, true},
		{"23:59", 23, 59, true},
		{"24:00", 24, 0, true},
		{"24:01", 0, 0, false},
		{"25:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"12", 0, 0, false},
		{"12:3", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"", 0, 0, false},
		{"-1:00", 0, 0, false},
	}
	for _, c := range cases {
		got, ok := ParseClock(c.input)
		if ok != c.wantOK {
			t.Errorf("ParseClock(%q) ok = %v, want %v", c.input, ok, c.wantOK)
			continue
		}
		if ok && (got.Hour != c.wantHour || got.Minute != c.wantMinute) {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", c.input, got.Hour, got.Minute, c.wantHour, c.wantMinute)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		clock Clock
		want  int
	}{
		{Clock{Hour: 0, Minute: 0}, 0},
		{Clock{Hour: 8, Minute: 30}, 510},
		{Clock{Hour: 21, Minute: 0}, 1260},
		{Clock{Hour: 24, Minute: 0}, 1440},
	}
	for _, c := range cases {
		if got := c.clock.Minutes(); got != c.want {
			t.Errorf("Clock(%d:%d).Minutes() = %d, want %d", c.clock.Hour, c.clock.Minute, got, c.want)
		}
	}
}

func TestClockNormalizedHour(t *testing.T) {
	if got := (Clock{Hour: 24}).NormalizedHour(); got != 0 {
		t.Errorf("NormalizedHour() = %d, want 0", got)
	}
	if got := (Clock{Hour: 23}).NormalizedHour(); got != 23 {
		t.Errorf("NormalizedHour() = %d, want 23", got)
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "abc", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
