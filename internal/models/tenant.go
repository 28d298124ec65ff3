package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tenant represents a person renting a property
type Tenant struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string          `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string          `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Phone     string          `gorm:"type:varchar(20)" json:"phone"`
	Email     string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Passport  string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"passport"`
	Income    decimal.Decimal `gorm:"type:decimal(10,2)" json:"income"`

	// Set once at insert, never updated afterwards
	RegistrationDate time.Time `gorm:"type:date;not null;autoCreateTime" json:"registration_date"`

	Contracts []Contract `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"contracts,omitempty"`
}

// TableName specifies the table name
func (Tenant) TableName() string {
	return "tenants"
}

// FullName returns "Last First" for display and audit labels
func (t Tenant) FullName() string {
	return fmt.Sprintf("%s %s", t.LastName, t.FirstName)
}
