package inputval

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in           string
		want         time.Time
		wantDateOnly bool
		wantErr      bool
	}{
		{"2026-03-01T12:30:00Z", time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), false, false},
		{"2026-03-01T12:30:00+02:00", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), false, false},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true, false},
		{"  2026-03-01  ", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true, false},
		{"tomorrow", time.Time{}, false, true},
		{"", time.Time{}, false, true},
	}

	for _, tc := range tests {
		got, dateOnly, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if dateOnly != tc.wantDateOnly {
			t.Errorf("ParseDate(%q) dateOnly = %v, want %v", tc.in, dateOnly, tc.wantDateOnly)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got := EndOfDay(in)

	if got.Day() != 1 || got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("EndOfDay = %v", got)
	}
	// Still inside the same day, never spilling into the next.
	if !got.Before(in.AddDate(0, 0, 1)) {
		t.Error("EndOfDay crossed into the next day")
	}
}

func TestTrimmedNonEmpty(t *testing.T) {
	if s, ok := TrimmedNonEmpty("  latte  "); !ok || s != "latte" {
		t.Errorf("got (%q, %v)", s, ok)
	}
	if _, ok := TrimmedNonEmpty("   "); ok {
		t.Error("whitespace-only string reported as non-empty")
	}
	if _, ok := TrimmedNonEmpty(""); ok {
		t.Error("empty string reported as non-empty")
	}
}
