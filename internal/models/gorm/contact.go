package gorm

import "time"

// Contact is one logged radio contact.
type Contact struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Callsign         string    `gorm:"column:callsign;size:20;not null;index"`
	Frequency        string    `gorm:"column:frequency;size:20;not null"`
	Mode             string    `gorm:"column:mode;size:10;not null"`
	RSTSent          string    `gorm:"column:rst_sent;size:10;not null"`
	RSTReceived      string    `gorm:"column:rst_received;size:10;not null"`
	ExchangeSent     string    `gorm:"column:exchange_sent;size:50;not null"`
	ExchangeReceived string    `gorm:"column:exchange_received;size:50;not null"`
	Section          *string   `gorm:"column:section;size:10"`
	LoggedAt         time.Time `gorm:"column:logged_at;not null;index"`
	Notes            string    `gorm:"column:notes;type:text"`
	OperatorCallsign string    `gorm:"column:operator_callsign;size:20"`

	// Setup active when the contact was logged. Historical record only:
	// deleting the setup does not cascade here.
	StationSetupID *uint `gorm:"column:station_setup_id"`
}

func (Contact) TableName() string {
	return "contacts"
}
