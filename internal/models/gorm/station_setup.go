package gorm

import "time"

// StationSetup is one named operating configuration. Which setup is
// active lives in the single-row StationConfig record, not here.
type StationSetup struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement"`
	SetupName           string    `gorm:"column:setup_name;size:100;not null;default:'Default Setup'"`
	StationCallsign     string    `gorm:"column:station_callsign;size:20;not null"`
	OperatorName        string    `gorm:"column:operator_name;size:100;not null"`
	OperatorCallsign    string    `gorm:"column:operator_callsign;size:20;not null"`
	Category            string    `gorm:"column:category;size:10;not null"`
	Section             string    `gorm:"column:section;size:10;not null"`
	Timezone            *string   `gorm:"column:timezone;size:50"`
	PowerLevel          string    `gorm:"column:power_level;size:50;not null"`
	Location            string    `gorm:"column:location;size:200"`
	GridSquare          *string   `gorm:"column:grid_square;size:10"`
	AdditionalOperators string    `gorm:"column:additional_operators;type:text"`
	EquipmentNotes      string    `gorm:"column:equipment_notes;type:text"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StationSetup) TableName() string {
	return "station_setups"
}

// StationConfig is the process-wide configuration record. Exactly one
// row exists (ID always 1); ActiveStationID points at the active setup
// or is null when none is active.
type StationConfig struct {
	ID              uint      `gorm:"column:id;primaryKey"`
	ActiveStationID *uint     `gorm:"column:active_station_id"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StationConfig) TableName() string {
	return "station_configs"
}
