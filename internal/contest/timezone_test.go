package contest

import "testing"

func TestTimezoneForSection(t *testing.T) {
	cases := []struct {
		section string
		want    string
	}{
		{"", "America/New_York"}, // default when no section
		{"AK", "America/Anchorage"},
		{"HI", "Pacific/Honolulu"},
		{"WA", "America/Los_Angeles"},
		{"SCV", "America/Los_Angeles"},
		{"CO", "America/Denver"},
		{"WI", "America/Chicago"},
		{"NTX", "America/Chicago"},
		{"EPA", "America/New_York"},
		{"MDC", "America/New_York"},
		{"BC", "America/Vancouver"},
		{"SK", "America/Regina"},
		{"NL", "America/St_Johns"},
		{"NU", "America/Iqaluit"},
		{"MX", "UTC"},
		{"DX", "UTC"},
		{"XX", "UTC"},
		{"epa", "America/New_York"}, // case-insensitive
	}

	for _, tc := range cases {
		if got := TimezoneForSection(tc.section); got != tc.want {
			t.Errorf("TimezoneForSection(%q) = %q, want %q", tc.section, got, tc.want)
		}
	}
}

func TestTimezoneLabel(t *testing.T) {
	cases := []struct {
		tz   string
		want string
	}{
		{"America/Los_Angeles", "Pacific"},
		{"America/Chicago", "Central"},
		{"America/Halifax", "Atlantic"},
		{"America/St_Johns", "Newfoundland"},
		{"UTC", "UTC"},
		{"Europe/Berlin", "Local"},
	}

	for _, tc := range cases {
		if got := TimezoneLabel(tc.tz); got != tc.want {
			t.Errorf("TimezoneLabel(%q) = %q, want %q", tc.tz, got, tc.want)
		}
	}
}
