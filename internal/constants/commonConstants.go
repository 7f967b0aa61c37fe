package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixBandActivity     CachePrefix = "STATS_BANDS"
	CachePrefixTemporalActivity CachePrefix = "STATS_TEMPORAL"
	CachePrefixModeStats        CachePrefix = "STATS_MODES"
	CachePrefixUsedExportToken  CachePrefix = "EXPORT_TOKEN_"
)

const (
	// ContestID is the contest identifier used in Cabrillo and ADIF output.
	ContestID = "WFD"

	// ContestEvent tags export filenames, e.g. K1ABC_WFD_2026.log.
	ContestEvent = "WFD_2026"

	// ProgramID identifies this logger in ADIF headers.
	ProgramID = "Logkeeper"

	// ADIFVersion is the ADIF spec version emitted in export headers.
	ADIFVersion = "3.1.4"
)
