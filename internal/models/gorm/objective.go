package gorm

import "time"

// Objective is one bonus-scoring goal from the fixed catalog.
type Objective struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string     `gorm:"column:name;size:100;not null"`
	Description     string     `gorm:"column:description;type:text;not null"`
	Multiplier      int        `gorm:"column:multiplier;not null"`
	Completed       bool       `gorm:"column:completed;not null;default:false"`
	CompletionNotes *string    `gorm:"column:completion_notes;type:text"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Objective) TableName() string {
	return "objectives"
}
