package forms_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-portal/internal/forms"
	"rental-portal/internal/models"
)

func TestApplyValidInput(t *testing.T) {
	form := forms.PropertyForm{
		Owner:       "3",
		Title:       "Sunny Flat",
		Description: "South-facing 2BR",
		Price:       "1200.50",
		Address:     "1 Main St",
		IsForRent:   "on",
	}

	var p models.Property
	errs := form.Apply(&p)
	require.Nil(t, errs)

	assert.Equal(t, uint(3), p.OwnerID)
	assert.Equal(t, "Sunny Flat", p.Title)
	assert.Equal(t, "South-facing 2BR", p.Description)
	assert.Equal(t, "1200.50", p.Price.StringFixed(2))
	assert.Equal(t, "1 Main St", p.Address)
	assert.True(t, p.IsAvailable)
}

func TestApplyUncheckedCheckbox(t *testing.T) {
	// Browsers omit unchecked checkboxes from the POST body entirely
	form := forms.PropertyForm{
		Owner:   "1",
		Title:   "Quiet Flat",
		Price:   "900.00",
		Address: "2 Side St",
	}

	var p models.Property
	errs := form.Apply(&p)
	require.Nil(t, errs)
	assert.False(t, p.IsAvailable)
}

func TestApplyBadOwnerAndPrice(t *testing.T) {
	form := forms.PropertyForm{
		Owner:   "not-a-number",
		Title:   "Broken Flat",
		Price:   "twelve",
		Address: "3 Err St",
	}

	var p models.Property
	errs := form.Apply(&p)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "owner")
	assert.Contains(t, errs, "price")
}

func TestApplyTrimsWhitespace(t *testing.T) {
	form := forms.PropertyForm{
		Owner:   "1",
		Title:   "  Padded Flat  ",
		Price:   "800.00",
		Address: "  4 Trim St  ",
	}

	var p models.Property
	errs := form.Apply(&p)
	require.Nil(t, errs)
	assert.Equal(t, "Padded Flat", p.Title)
	assert.Equal(t, "4 Trim St", p.Address)
}

func TestFromPropertyPrefill(t *testing.T) {
	p := models.Property{
		OwnerID:     7,
		Title:       "Existing Flat",
		Description: "Lived-in",
		Price:       decimal.RequireFromString("1500.5"),
		Address:     "5 Old St",
		IsAvailable: true,
	}

	form := forms.FromProperty(&p)
	assert.Equal(t, "7", form.Owner)
	assert.Equal(t, "Existing Flat", form.Title)
	assert.Equal(t, "1500.50", form.Price, "prices render with two fraction digits")
	assert.Equal(t, "on", form.IsForRent)

	p.IsAvailable = false
	form = forms.FromProperty(&p)
	assert.Empty(t, form.IsForRent)
}
