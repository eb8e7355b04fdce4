package models

// IntakeEvent is one recorded drink. Timestamps are stored as local ISO-8601
// strings with second precision ("2006-01-02T15:04:05"); the fixed-width,
// zero-padded form is what makes lexicographic ordering chronological, so the
// service normalizes every timestamp before it reaches this table.
type IntakeEvent struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TS       string `gorm:"column:ts;not null;index" json:"ts"`
	AmountML int    `gorm:"column:amount_ml;not null" json:"amount_ml"`
}

// TableName keeps the table compatible with the original app's intake.db.
func (IntakeEvent) TableName() string { return "intake" }
