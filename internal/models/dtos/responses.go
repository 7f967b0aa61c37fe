package dtos

import "time"

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ContactResponse is one logged contact as the API exposes it.
type ContactResponse struct {
	ID               uint      `json:"id"`
	Callsign         string    `json:"callsign"`
	Frequency        string    `json:"frequency"`
	Band             string    `json:"band"`
	Mode             string    `json:"mode"`
	RSTSent          string    `json:"rst_sent"`
	RSTReceived      string    `json:"rst_received"`
	ExchangeSent     string    `json:"exchange_sent"`
	ExchangeReceived string    `json:"exchange_received"`
	Section          *string   `json:"section"`
	LoggedAt         time.Time `json:"logged_at"`
	Notes            string    `json:"notes,omitempty"`
	OperatorCallsign string    `json:"operator_callsign,omitempty"`
	StationSetupID   *uint     `json:"station_setup_id,omitempty"`
}

// ContactListResponse is a page of contacts, newest first.
type ContactListResponse struct {
	Contacts   []ContactResponse `json:"contacts"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// DuplicateWarning is one advisory message from the duplicate check.
type DuplicateWarning struct {
	Type    string `json:"type"` // "danger" for exact, "warning" for band-level
	Message string `json:"message"`
}

// DuplicateCheckResponse reports both duplicate dimensions. Both
// matches are advisory; logging is never blocked.
type DuplicateCheckResponse struct {
	IsDuplicate     bool               `json:"is_duplicate"`
	IsBandDuplicate bool               `json:"is_band_duplicate"`
	ExactMatch      *ContactResponse   `json:"exact_match,omitempty"`
	BandMatch       *ContactResponse   `json:"band_match,omitempty"`
	Warnings        []DuplicateWarning `json:"warnings"`
}

// ScoreBreakdown exposes every intermediate scoring quantity.
type ScoreBreakdown struct {
	ContactPoints       int      `json:"contact_points"`
	Multipliers         int      `json:"multipliers"`
	UniqueSections      []string `json:"unique_sections"`
	BaseScore           int      `json:"base_score"`
	ObjectiveMultiplier int      `json:"objective_multiplier"`
	CompletedObjectives int      `json:"completed_objectives_count"`
	FinalScore          int      `json:"final_score"`
}

// StationSetupResponse is one setup plus its derived state.
type StationSetupResponse struct {
	ID                  uint      `json:"id"`
	SetupName           string    `json:"setup_name"`
	StationCallsign     string    `json:"station_callsign"`
	OperatorName        string    `json:"operator_name"`
	OperatorCallsign    string    `json:"operator_callsign"`
	Category            string    `json:"category"`
	Section             string    `json:"section"`
	Timezone            *string   `json:"timezone,omitempty"`
	PowerLevel          string    `json:"power_level"`
	Location            string    `json:"location,omitempty"`
	GridSquare          *string   `json:"grid_square,omitempty"`
	AdditionalOperators string    `json:"additional_operators,omitempty"`
	EquipmentNotes      string    `json:"equipment_notes,omitempty"`
	IsActive            bool      `json:"is_active"`
	DefaultExchange     string    `json:"default_exchange,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// OperatorOption is one selectable operator from the active setup.
type OperatorOption struct {
	Callsign string `json:"callsign"`
	Label    string `json:"label"`
}

// TimezoneResponse describes the active station's resolved timezone.
type TimezoneResponse struct {
	Timezone string  `json:"timezone"`
	Section  *string `json:"section"`
	Label    string  `json:"label"`
}

// ObjectiveResponse is one catalog objective with completion state.
type ObjectiveResponse struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Multiplier      int        `json:"multiplier"`
	Completed       bool       `json:"completed"`
	CompletionNotes *string    `json:"completion_notes,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ObjectiveListResponse is the catalog plus the earned bonus total.
type ObjectiveListResponse struct {
	Objectives      []ObjectiveResponse `json:"objectives"`
	TotalMultiplier int                 `json:"total_multiplier"`
}

// StatsSummary mirrors the overview stats page groupings.
type StatsSummary struct {
	TotalContacts  int64            `json:"total_contacts"`
	ModeCounts     map[string]int64 `json:"mode_counts"`
	BandCounts     map[string]int64 `json:"band_counts"`
	OperatorCounts map[string]int64 `json:"operator_counts"`
}

// BandActivity aggregates contacts per band, modes per band, and
// hourly activity per band. SkippedRecords counts contacts that could
// not be aggregated; an empty result with zero skips means "no data".
type BandActivity struct {
	BandCounts     map[string]int            `json:"band_counts"`
	ModesPerBand   map[string]map[string]int `json:"modes_per_band"`
	HourlyActivity map[string][24]int        `json:"hourly_activity"`
	SkippedRecords int                       `json:"skipped_records"`
}

// CumulativePoint is one step of the running contact total.
type CumulativePoint struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// TemporalActivity aggregates activity over time.
type TemporalActivity struct {
	HourlyCounts   [24]int           `json:"hourly_counts"`
	DailyCounts    map[string]int    `json:"daily_counts"`
	Cumulative     []CumulativePoint `json:"cumulative_data"`
	SkippedRecords int               `json:"skipped_records"`
}

// ModeStatistics aggregates per-mode counts, points, and hourly use.
type ModeStatistics struct {
	ModeCounts     map[string]int     `json:"mode_counts"`
	ModePoints     map[string]int     `json:"mode_points"`
	ModeHourly     map[string][24]int `json:"mode_hourly"`
	SkippedRecords int                `json:"skipped_records"`
}

// ActivityReport bundles the three analytics aggregations.
type ActivityReport struct {
	Bands    BandActivity     `json:"bands"`
	Temporal TemporalActivity `json:"temporal"`
	Modes    ModeStatistics   `json:"modes"`
}

// MapData lists worked sections, derived states, and per-section counts.
type MapData struct {
	States        []string       `json:"states"`
	Sections      []string       `json:"sections"`
	SectionCounts map[string]int `json:"sectionCounts"`
}

// ExportLinkResponse carries a signed single-use download token.
type ExportLinkResponse struct {
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	ExpiresIn int    `json:"expires_in"`
}
