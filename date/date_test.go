package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-07-31", want: New(2025, 7, 31)},
		{in: "2025-7-1", want: New(2025, 7, 1)}, // permissive single digit
		{in: "31/07/2025", err: true},
		{in: "", err: true},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.err {
			if err == nil {
				t.Errorf("Parse(%q): want error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAdd_Normalizes(t *testing.T) {
	// crossing a month boundary must normalize
	if got := New(2025, 1, 31).Add(1); got != New(2025, 2, 1) {
		t.Errorf("Add(1) = %v, want 2025-02-01", got)
	}
	// a week back across a year boundary
	if got := New(2026, 1, 3).Add(-7); got != New(2025, 12, 27) {
		t.Errorf("Add(-7) = %v, want 2025-12-27", got)
	}
}

func TestWeekday(t *testing.T) {
	// 2025-08-23 is a Saturday, the bot's weekly digest day.
	if got := New(2025, 8, 23).Weekday(); got != time.Saturday {
		t.Errorf("Weekday() = %v, want Saturday", got)
	}
}
