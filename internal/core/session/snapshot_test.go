package session

import "testing"

// TestFormatSeconds verifies the display format: bare seconds under a
// minute, minutes:seconds at sixty and above.
func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{59, "59s"},
		{60, "1:00"},
		{61, "1:01"},
		{125, "2:05"},
		{600, "10:00"},
		{-4, "0s"},
	}
	for _, tc := range cases {
		if got := FormatSeconds(tc.seconds); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
