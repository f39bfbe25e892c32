package minitimer

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		want string
		d    time.Duration
	}{
		{"00:00", 0},
		{"00:01", time.Second},
		{"00:59", 59 * time.Second},
		{"00:59", 59*time.Second + 999*time.Millisecond}, // sub-second remainder floors
		{"01:00", time.Minute},
		{"01:01", 61 * time.Second},
		{"59:59", 59*time.Minute + 59*time.Second},
		{"01:00:00", time.Hour},
		{"01:01:05", time.Hour + time.Minute + 5*time.Second},
		{"24:00:00", 24 * time.Hour},
		{"100:00:00", 100 * time.Hour}, // hours widen past two digits
		{"00:00", -time.Second},        // negative clamps to zero
	}

	for _, tc := range cases {
		if got := FormatTime(tc.d); got != tc.want {
			t.Fatalf("FormatTime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
