package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of accepted payment methods
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// PaymentMethods lists every valid payment method
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// Payment represents one rent payment covering a billing period.
// period_end > period_start is a standing table constraint.
type Payment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ContractID uint     `gorm:"not null;index" json:"contract_id"`
	Contract   Contract `gorm:"foreignKey:ContractID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentDate time.Time       `gorm:"type:date;not null;index:idx_payments_payment_date,sort:desc" json:"payment_date"`

	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null;check:chk_payments_method,payment_method IN ('cash','card','transfer')" json:"payment_method"`

	PeriodStart time.Time `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd   time.Time `gorm:"type:date;not null;check:chk_payments_period,period_end > period_start" json:"period_end"`

	IsConfirmed bool `gorm:"not null;default:false" json:"is_confirmed"`

	CreatedAt time.Time `gorm:"type:datetime;not null;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}
