package contest

import (
	"fmt"
	"strconv"
	"strings"

	"winterfieldday/logkeeper/internal/constants"
)

// BandForFrequency maps a frequency string in MHz to a band label.
// Out-of-plan frequencies get a "<value>MHz" label and non-numeric
// input comes back unchanged; classification never fails.
func BandForFrequency(frequency string) string {
	freq, err := strconv.ParseFloat(strings.TrimSpace(frequency), 64)
	if err != nil {
		return frequency
	}

	for _, r := range constants.BandPlan {
		if freq >= r.Low && freq <= r.High {
			return r.Name
		}
	}
	return fmt.Sprintf("%gMHz", freq)
}

// CabrilloFrequency converts a frequency in MHz to the submission
// format's frequency field: kHz for HF, a band designator for VHF and
// above, and a fixed mid-band default when the input cannot be parsed.
func CabrilloFrequency(frequency string) string {
	freq, err := strconv.ParseFloat(strings.TrimSpace(frequency), 64)
	if err != nil {
		return constants.DefaultCabrilloFrequency
	}

	for _, r := range constants.CabrilloHFBands {
		if freq >= r.Low && freq <= r.High {
			return strconv.Itoa(int(freq * 1000))
		}
	}
	for _, b := range constants.CabrilloVHFBands {
		if freq >= b.Low && freq <= b.High {
			return b.Designator
		}
	}
	return strconv.Itoa(int(freq * 1000))
}

// CabrilloMode buckets an operating mode into the CW / PH / DG codes.
func CabrilloMode(mode string) string {
	m := strings.ToUpper(strings.TrimSpace(mode))
	if m == "CW" {
		return constants.CabrilloModeCW
	}
	if _, ok := constants.CabrilloPhoneModes[m]; ok {
		return constants.CabrilloModePhone
	}
	return constants.CabrilloModeDigital
}

// ContactPoints scores one contact by mode: 2 for CW/digital, 1 for
// voice.
func ContactPoints(mode string) int {
	if _, ok := constants.ScoringDigitalModes[strings.ToUpper(strings.TrimSpace(mode))]; ok {
		return 2
	}
	return 1
}
