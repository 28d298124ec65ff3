package validators

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-portal/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validOwner() *models.Owner {
	return &models.Owner{
		FirstName: "Anna",
		LastName:  "Smirnova",
		Phone:     "+79261234567",
		Email:     "anna@example.com",
		Passport:  "4509123456",
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+79261234567", "123456789", "79261234567", "+1999999999999999"}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{"", "12345678", "abc123456789", "+7 926 123 45 67", "99999999999999999"}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestOwnerValidation(t *testing.T) {
	assert.Empty(t, Owner(validOwner()))

	o := validOwner()
	o.FirstName = ""
	o.Email = "bad"
	errs := Owner(o)
	assert.Contains(t, errs, "first_name")
	assert.Contains(t, errs, "email")
	assert.NotContains(t, errs, "last_name")
}

func TestTenantIncomePrecision(t *testing.T) {
	tenant := &models.Tenant{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Phone:     "+79261234568",
		Email:     "ivan@example.com",
		Passport:  "4509123457",
		Income:    decimal.RequireFromString("1234.567"),
	}
	errs := Tenant(tenant)
	assert.Contains(t, errs, "income")

	tenant.Income = decimal.RequireFromString("1234.56")
	assert.Empty(t, Tenant(tenant))

	// Trailing zeros carry no extra precision and must pass
	tenant.Income = decimal.RequireFromString("1234.560")
	assert.Empty(t, Tenant(tenant))

	tenant.Income = decimal.RequireFromString("1234.5600001")
	assert.Contains(t, Tenant(tenant), "income")
}

func TestPropertyValidation(t *testing.T) {
	p := &models.Property{
		OwnerID:      1,
		Title:        "Sunny Flat",
		Address:      "1 Main St",
		PropertyType: models.PropertyTypeApartment,
		Price:        decimal.RequireFromString("1200.00"),
	}
	assert.Empty(t, Property(p))

	p.Title = ""
	p.PropertyType = "castle"
	p.Rooms = -1
	errs := Property(p)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "property_type")
	assert.Contains(t, errs, "rooms")
}

func TestPropertyTitleLength(t *testing.T) {
	p := &models.Property{OwnerID: 1, Address: "1 Main St"}
	for len(p.Title) <= 100 {
		p.Title += "x"
	}
	errs := Property(p)
	assert.Contains(t, errs, "title")
}

func TestContractDateOrdering(t *testing.T) {
	c := &models.Contract{
		PropertyID: 1,
		TenantID:   1,
		StartDate:  date(2026, time.January, 1),
		EndDate:    date(2026, time.December, 31),
		Status:     models.ContractStatusActive,
	}
	assert.Empty(t, Contract(c))

	c.EndDate = c.StartDate
	errs := Contract(c)
	require.Contains(t, errs, "end_date")

	c.EndDate = date(2025, time.June, 1)
	errs = Contract(c)
	assert.Contains(t, errs, "end_date")
}

func TestPaymentPeriodOrdering(t *testing.T) {
	p := &models.Payment{
		ContractID:    1,
		Amount:        decimal.RequireFromString("1200.00"),
		PaymentDate:   date(2026, time.February, 1),
		PaymentMethod: models.PaymentMethodCard,
		PeriodStart:   date(2026, time.February, 1),
		PeriodEnd:     date(2026, time.March, 1),
	}
	assert.Empty(t, Payment(p))

	p.PeriodEnd = p.PeriodStart
	errs := Payment(p)
	assert.Contains(t, errs, "period_end")
}

func TestPaymentMethodRequired(t *testing.T) {
	p := &models.Payment{
		ContractID:  1,
		PaymentDate: date(2026, time.February, 1),
		PeriodStart: date(2026, time.February, 1),
		PeriodEnd:   date(2026, time.March, 1),
	}
	errs := Payment(p)
	assert.Contains(t, errs, "payment_method")

	p.PaymentMethod = "barter"
	errs = Payment(p)
	assert.Contains(t, errs, "payment_method")
}

func TestEnumsAreClosed(t *testing.T) {
	assert.True(t, models.PropertyTypeHouse.Valid())
	assert.False(t, models.PropertyType("castle").Valid())
	assert.True(t, models.ContractStatusTerminated.Valid())
	assert.False(t, models.ContractStatus("paused").Valid())
	assert.True(t, models.PaymentMethodTransfer.Valid())
	assert.False(t, models.PaymentMethod("crypto").Valid())
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("title", "title is required")
	errs.Add("title", "shadowed")
	errs.Add("price", "price must be a decimal number")
	assert.Equal(t, "price: price must be a decimal number; title: title is required", errs.Error())
	assert.Error(t, errs.OrNil())
	assert.NoError(t, FieldErrors{}.OrNil())
}
