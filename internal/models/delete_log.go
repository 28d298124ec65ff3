package models

import "time"

// DeleteLog is an audit record written inside every cascade-delete transaction
type DeleteLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Entity     string    `gorm:"type:varchar(50);not null;index" json:"entity"`
	RecordID   uint      `gorm:"not null;index" json:"record_id"`
	Label      string    `gorm:"type:text" json:"label"`
	Dependents int       `gorm:"not null;default:0" json:"dependents"`
	DeletedAt  time.Time `gorm:"type:datetime;not null;autoCreateTime;index" json:"deleted_at"`
	Reason     string    `gorm:"type:varchar(50);not null" json:"reason"`
}

// TableName specifies the table name
func (DeleteLog) TableName() string {
	return "delete_logs"
}

// DeleteReason constants
const (
	DeleteReasonAdminBrowser   = "admin_browser"
	DeleteReasonPropertyScreen = "property_screen"
)
