package constants

// ObjectiveSeed is one entry of the fixed bonus-objective catalog.
type ObjectiveSeed struct {
	Name        string
	Description string
	Multiplier  int
}

// ObjectiveCatalog is seeded into the objectives table on first access.
var ObjectiveCatalog = []ObjectiveSeed{
	{"Alternative Power", "Operate exclusively on alternative power (batteries, solar, etc.)", 1},
	{"Away from Home", "Set up your station more than 0.5 miles from your home", 3},
	{"Multiple Antennas", "Deploy two or more antennas and make at least one contact on each", 1},
	{"FM Satellite Contact", "Make at least 1 FM satellite contact", 2},
	{"SSB/CW Satellite Contact", "Make at least one SSB or CW satellite contact", 3},
	{"Winlink Email", "Send and receive at least one Winlink email via RF", 1},
	{"WFD Special Bulletin", "Copy the Winter Field Day special bulletin message", 1},
	{"Six Different Bands", "Make three contacts on at least six different bands", 6},
	{"Twelve Different Bands", "Make three contacts on at least twelve different bands", 6},
	{"Multiple Modes", "Use multiple modes (Phone/CW/Digital)", 2},
	{"QRP Operation", "Operate with less than 10W phone or 5W CW/digital", 4},
	{"Six Continuous Hours", "Monitor and operate for six continuous hours", 2},
}
