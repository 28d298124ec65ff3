package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType is the closed set of rental property kinds
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyTypes lists every valid property type, for forms and the admin browser
var PropertyTypes = []PropertyType{PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial}

// Valid reports whether t is a known property type
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial:
		return true
	}
	return false
}

// Property represents a rentable unit belonging to an owner
type Property struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OwnerID uint  `gorm:"not null;index" json:"owner_id"`
	Owner   Owner `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Title        string          `gorm:"type:varchar(100);not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	Address      string          `gorm:"type:text;not null" json:"address"`
	PropertyType PropertyType    `gorm:"type:varchar(20);not null;default:'apartment';check:chk_properties_type,property_type IN ('apartment','house','commercial')" json:"property_type"`
	Area         decimal.Decimal `gorm:"type:decimal(10,2)" json:"area"`
	Rooms        int             `gorm:"not null;default:0;check:chk_properties_rooms,rooms >= 0" json:"rooms"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`

	// The public form submits this flag under the name is_for_rent
	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `gorm:"type:datetime;not null;autoCreateTime;index:idx_properties_created_at,sort:desc" json:"created_at"`

	Contracts []Contract `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"contracts,omitempty"`
}

// TableName specifies the table name
func (Property) TableName() string {
	return "properties"
}

// PriceDisplay renders the price with its two fractional digits
func (p Property) PriceDisplay() string {
	return p.Price.StringFixed(2)
}
