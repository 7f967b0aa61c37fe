package constants

// BandRange is one inclusive frequency allocation in MHz.
type BandRange struct {
	Low  float64
	High float64
	Name string
}

// BandPlan is the ordered band table, 160m through 23cm. Ranges do not
// overlap, but lookup order is preserved so boundary ties stay stable.
var BandPlan = []BandRange{
	{1.8, 2.0, "160m"},
	{3.5, 4.0, "80m"},
	{5.3, 5.4, "60m"},
	{7.0, 7.3, "40m"},
	{10.1, 10.15, "30m"},
	{14.0, 14.35, "20m"},
	{18.068, 18.168, "17m"},
	{21.0, 21.45, "15m"},
	{24.89, 24.99, "12m"},
	{28.0, 29.7, "10m"},
	{50.0, 54.0, "6m"},
	{144.0, 148.0, "2m"},
	{219.0, 225.0, "1.25m"},
	{420.0, 450.0, "70cm"},
	{902.0, 928.0, "33cm"},
	{1240.0, 1300.0, "23cm"},
}

// CabrilloVHFBands maps VHF/UHF+ allocations to the Cabrillo band
// designators the submission format wants instead of a kHz figure. HF
// contacts are written as kHz and are not listed here.
var CabrilloVHFBands = []struct {
	Low        float64
	High       float64
	Designator string
}{
	{50.0, 54.0, "50"},
	{144.0, 148.0, "144"},
	{220.0, 225.0, "222"},
	{420.0, 450.0, "432"},
	{902.0, 928.0, "902"},
	{1240.0, 1300.0, "1.2G"},
	{2300.0, 2450.0, "2.3G"},
	{3300.0, 3500.0, "3.4G"},
	{5650.0, 5925.0, "5.7G"},
	{10000.0, 10500.0, "10G"},
	{24000.0, 24250.0, "24G"},
}

// CabrilloHFBands are the HF allocations whose Cabrillo frequency field
// is the contact frequency converted to kHz.
var CabrilloHFBands = []BandRange{
	{1.8, 2.0, "160m"},
	{3.5, 4.0, "80m"},
	{7.0, 7.3, "40m"},
	{14.0, 14.35, "20m"},
	{21.0, 21.45, "15m"},
	{28.0, 29.7, "10m"},
}

// DefaultCabrilloFrequency substitutes for an unparsable frequency in
// Cabrillo output (kHz, mid 20m band).
const DefaultCabrilloFrequency = "14000"

// DefaultADIFFrequency substitutes for an unparsable frequency in ADIF
// output (MHz).
const DefaultADIFFrequency = 14.205
