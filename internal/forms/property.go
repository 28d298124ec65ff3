// Package forms adapts the public Property create/edit form to the schema. The
// form exposes the public subset of Property fields plus the owner picker; all
// other columns are reachable only through the administrative record browser.
package forms

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// PropertyForm holds the raw submitted field values so an invalid submission can
// be re-rendered exactly as the user typed it
type PropertyForm struct {
	Owner       string `form:"owner"`
	Title       string `form:"title"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Address     string `form:"address"`
	IsForRent   string `form:"is_for_rent"`
}

// FromProperty pre-populates the form from an existing record for the edit screen
func FromProperty(p *models.Property) *PropertyForm {
	f := &PropertyForm{
		Owner:       strconv.FormatUint(uint64(p.OwnerID), 10),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Address:     p.Address,
	}
	if p.IsAvailable {
		f.IsForRent = "on"
	}
	return f
}

// Apply parses the submitted values onto p, returning field errors for values
// that do not parse. Schema validation proper happens in the persistence layer;
// p is only written to, never persisted, here.
func (f *PropertyForm) Apply(p *models.Property) validators.FieldErrors {
	errs := validators.FieldErrors{}

	f.Owner = strings.TrimSpace(f.Owner)
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = strings.TrimSpace(f.Price)
	f.Address = strings.TrimSpace(f.Address)

	if f.Owner == "" {
		errs.Add("owner", "owner is required")
	} else if ownerID, err := strconv.ParseUint(f.Owner, 10, 32); err != nil {
		errs.Add("owner", "owner must be a record id")
	} else {
		p.OwnerID = uint(ownerID)
	}

	p.Title = f.Title
	p.Description = f.Description
	p.Address = f.Address

	if f.Price == "" {
		errs.Add("price", "price is required")
	} else if price, err := decimal.NewFromString(f.Price); err != nil {
		errs.Add("price", "price must be a decimal number")
	} else {
		p.Price = price
	}

	// Checkboxes submit "on" when ticked and nothing at all when not
	p.IsAvailable = f.IsForRent != ""

	if len(errs) == 0 {
		return nil
	}
	return errs
}
