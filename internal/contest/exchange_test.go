package contest

import (
	"errors"
	"testing"
)

func TestValidateExchange_Valid(t *testing.T) {
	valid := []string{
		"1H GA",
		"2I EPA",
		"3O WI",
		"4M STX",
		"12H ON",
		"1h ga",  // case-insensitive
		" 2M MX", // leading space, Mexico token
		"5O DX",
	}

	for _, exchange := range valid {
		if err := ValidateExchange(exchange); err != nil {
			t.Errorf("ValidateExchange(%q) = %v, want nil", exchange, err)
		}
	}
}

func TestValidateExchange_Invalid(t *testing.T) {
	cases := []struct {
		exchange string
		reason   string
	}{
		{"", ReasonEmpty},
		{"   ", ReasonEmpty},
		{"2I", ReasonTokenCount},
		{"2I EPA EXTRA", ReasonTokenCount},
		{"0H GA", ReasonBadCategory},
		{"H GA", ReasonBadCategory},
		{"2X GA", ReasonBadClassLetter},
		{"3Q WI", ReasonBadClassLetter},
		{"2I XX", ReasonUnknownSection},
		{"1H ZZZ", ReasonUnknownSection},
	}

	for _, tc := range cases {
		err := ValidateExchange(tc.exchange)
		if err == nil {
			t.Errorf("ValidateExchange(%q) = nil, want error with reason %s", tc.exchange, tc.reason)
			continue
		}

		var invalid *InvalidExchangeError
		if !errors.As(err, &invalid) {
			t.Errorf("ValidateExchange(%q) returned %T, want *InvalidExchangeError", tc.exchange, err)
			continue
		}

		if invalid.Reason != tc.reason {
			t.Errorf("ValidateExchange(%q) reason = %s, want %s", tc.exchange, invalid.Reason, tc.reason)
		}
	}
}

func TestExtractSection(t *testing.T) {
	cases := []struct {
		exchange string
		want     string
		ok       bool
	}{
		{"2I WI", "WI", true},
		{"2I XX", "", false},
		{"", "", false},
		{"WI", "", false},             // single token: no plausible exchange
		{"garbage EPA", "EPA", true},  // malformed category is tolerated
		{"1h mx", "MX", true},         // uppercased on the way out
		{"3O dx", "DX", true},
		{"2M  NTX", "NTX", true}, // extra whitespace
	}

	for _, tc := range cases {
		got, ok := ExtractSection(tc.exchange)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ExtractSection(%q) = (%q, %v), want (%q, %v)", tc.exchange, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsKnownSection(t *testing.T) {
	for _, s := range []string{"GA", "EPA", "ON", "MX", "DX"} {
		if !IsKnownSection(s) {
			t.Errorf("IsKnownSection(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "XX", "ZZZ", "ga"} {
		if IsKnownSection(s) {
			t.Errorf("IsKnownSection(%q) = true, want false", s)
		}
	}
}
