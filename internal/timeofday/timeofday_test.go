package timeofday

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{" 17:05 ", 1025, false},
		{"24:00", 1440, false},
		{"24:01", 0, true},
		{"7", 0, true},
		{"ab:10", 0, true},
		{"10:60", 0, true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(390); got != "06:30" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := Format(-1); got != Unset {
		t.Fatalf("expected unset marker, got %s", got)
	}
	if got := Format(1500); got != "25:00" {
		t.Fatalf("unexpected format past midnight: %s", got)
	}
}

func TestOfDayWrapsAround(t *testing.T) {
	if OfDay(1500) != 60 {
		t.Fatalf("expected 60, got %d", OfDay(1500))
	}
	if OfDay(-60) != 1380 {
		t.Fatalf("expected 1380, got %d", OfDay(-60))
	}
	if OfDay(2*MinutesPerDay) != 0 {
		t.Fatalf("expected midnight")
	}
}

func TestDayOffset(t *testing.T) {
	if DayOffset(0) != 0 || DayOffset(1439) != 0 || DayOffset(1440) != 1 || DayOffset(3000) != 2 {
		t.Fatalf("unexpected day offsets")
	}
	if DayOffset(-1) != -1 {
		t.Fatalf("expected -1 for the previous day, got %d", DayOffset(-1))
	}
}

func TestFormatAbsolute(t *testing.T) {
	if got := FormatAbsolute(600, 0); got != "10:00" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := FormatAbsolute(MinutesPerDay+390, 0); got != "06:30 (+1d)" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := FormatAbsolute(MinutesPerDay+390, 1); got != "06:30" {
		t.Fatalf("unexpected relative to day 1: %s", got)
	}
}
