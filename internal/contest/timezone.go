package contest

import (
	"strings"

	"winterfieldday/logkeeper/internal/constants"
)

// TimezoneForSection derives an IANA zone id from a section code. A
// station-level override always wins at the call site; this is only
// the fallback derivation. Empty input defaults to US Eastern and
// unrecognized sections (including MX/DX) resolve to UTC.
func TimezoneForSection(section string) string {
	if strings.TrimSpace(section) == "" {
		return "America/New_York"
	}

	s := strings.ToUpper(strings.TrimSpace(section))

	switch s {
	case "AK":
		return "America/Anchorage"
	case "HI":
		return "Pacific/Honolulu"
	}

	if tz, ok := constants.CanadianSectionTimezones[s]; ok {
		return tz
	}

	if _, ok := constants.PacificSections[s]; ok {
		return "America/Los_Angeles"
	}
	if _, ok := constants.MountainSections[s]; ok {
		return "America/Denver"
	}
	if _, ok := constants.CentralSections[s]; ok {
		return "America/Chicago"
	}
	if _, ok := constants.EasternSections[s]; ok {
		return "America/New_York"
	}

	return "UTC"
}

// TimezoneLabel returns the short display label for a zone id, or
// "Local" for zones outside the known table.
func TimezoneLabel(tz string) string {
	if label, ok := constants.TimezoneLabels[tz]; ok {
		return label
	}
	return "Local"
}
