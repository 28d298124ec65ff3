package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus is the closed set of lease contract states
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusCompleted  ContractStatus = "completed"
	ContractStatusTerminated ContractStatus = "terminated"
)

// ContractStatuses lists every valid contract status
var ContractStatuses = []ContractStatus{ContractStatusActive, ContractStatusCompleted, ContractStatusTerminated}

// Valid reports whether s is a known contract status
func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusActive, ContractStatusCompleted, ContractStatusTerminated:
		return true
	}
	return false
}

// Contract represents a lease between a property and a tenant.
// end_date > start_date is a standing table constraint, not just input validation.
type Contract struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	PropertyID uint     `gorm:"not null;index" json:"property_id"`
	Property   Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	TenantID uint   `gorm:"not null;index" json:"tenant_id"`
	Tenant   Tenant `gorm:"foreignKey:TenantID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_contracts_start_date,sort:desc" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;check:chk_contracts_dates,end_date > start_date" json:"end_date"`

	MonthlyRent decimal.Decimal `gorm:"type:decimal(10,2)" json:"monthly_rent"`
	Deposit     decimal.Decimal `gorm:"type:decimal(10,2)" json:"deposit"`

	Status ContractStatus `gorm:"type:varchar(20);not null;default:'active';index;check:chk_contracts_status,status IN ('active','completed','terminated')" json:"status"`

	CreatedAt time.Time `gorm:"type:datetime;not null;autoCreateTime" json:"created_at"`

	Payments []Payment `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// TableName specifies the table name
func (Contract) TableName() string {
	return "contracts"
}

// IsActive reports whether the contract is currently in force
func (c *Contract) IsActive() bool {
	return c.Status == ContractStatusActive
}
