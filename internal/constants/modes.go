package constants

// ScoringDigitalModes are the modes worth 2 contact points; anything
// else counts as voice at 1 point.
var ScoringDigitalModes = makeSet(
	"CW", "RTTY", "PSK", "FT8", "FT4", "JS8", "MSK144", "DATA",
)

// CabrilloPhoneModes bucket into the PH mode code; CW stays CW and
// everything else is DG.
var CabrilloPhoneModes = makeSet(
	"SSB", "AM", "FM", "DMR", "C4FM",
)

const (
	CabrilloModeCW      = "CW"
	CabrilloModePhone   = "PH"
	CabrilloModeDigital = "DG"
)
