package models

import (
	"fmt"
	"time"
)

// Owner represents a property owner
type Owner struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Passport  string `gorm:"type:varchar(50);not null;uniqueIndex" json:"passport"`

	// Set once at insert, never updated afterwards
	RegistrationDate time.Time `gorm:"type:date;not null;autoCreateTime" json:"registration_date"`

	Properties []Property `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"properties,omitempty"`
}

// TableName specifies the table name
func (Owner) TableName() string {
	return "owners"
}

// FullName returns "Last First" for display and audit labels
func (o Owner) FullName() string {
	return fmt.Sprintf("%s %s", o.LastName, o.FirstName)
}
