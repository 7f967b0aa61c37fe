package dtos

// ContactRequest is the payload for logging or editing a contact.
type ContactRequest struct {
	Callsign         string `json:"callsign"`
	Frequency        string `json:"frequency"`
	Mode             string `json:"mode"`
	RSTSent          string `json:"rst_sent"`
	RSTReceived      string `json:"rst_received"`
	ExchangeSent     string `json:"exchange_sent"`
	ExchangeReceived string `json:"exchange_received"`
	OperatorCallsign string `json:"operator_callsign"`
	Notes            string `json:"notes"`
}

// StationSetupRequest is the payload for creating or editing a setup.
type StationSetupRequest struct {
	SetupName           string `json:"setup_name"`
	StationCallsign     string `json:"station_callsign"`
	OperatorName        string `json:"operator_name"`
	OperatorCallsign    string `json:"operator_callsign"`
	Category            string `json:"category"`
	Section             string `json:"section"`
	Timezone            string `json:"timezone"`
	PowerLevel          string `json:"power_level"`
	Location            string `json:"location"`
	GridSquare          string `json:"grid_square"`
	AdditionalOperators string `json:"additional_operators"`
	EquipmentNotes      string `json:"equipment_notes"`
}

// ObjectiveUpdateRequest toggles completion state for one objective.
type ObjectiveUpdateRequest struct {
	Completed       bool   `json:"completed"`
	CompletionNotes string `json:"completion_notes"`
}

// ExportLinkRequest asks for a signed download link.
type ExportLinkRequest struct {
	Format string `json:"format"` // "cabrillo" or "adif"
}
