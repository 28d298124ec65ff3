package validators

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"rental-portal/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)
)

// IsValidEmail reports whether email has a valid address shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone reports whether phone matches the accepted number pattern
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// hasTwoPlaces reports whether d fits in 2 fractional digits without loss.
// Trailing zeros ("1200.500") are fine; only values a decimal(10,2) column
// would truncate are rejected.
func hasTwoPlaces(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

const maxTitleLen = 100

// Owner validates an owner record against the schema rules
func Owner(o *models.Owner) FieldErrors {
	errs := FieldErrors{}
	if o.FirstName == "" {
		errs.Add("first_name", "first name is required")
	}
	if o.LastName == "" {
		errs.Add("last_name", "last name is required")
	}
	if !IsValidPhone(o.Phone) {
		errs.Add("phone", "phone must match +?1?digits, 9 to 15 digits")
	}
	if o.Email == "" {
		errs.Add("email", "email is required")
	} else if !IsValidEmail(o.Email) {
		errs.Add("email", "invalid email format")
	}
	if o.Passport == "" {
		errs.Add("passport", "passport is required")
	}
	return errs
}

// Tenant validates a tenant record against the schema rules
func Tenant(t *models.Tenant) FieldErrors {
	errs := FieldErrors{}
	if t.FirstName == "" {
		errs.Add("first_name", "first name is required")
	}
	if t.LastName == "" {
		errs.Add("last_name", "last name is required")
	}
	if !IsValidPhone(t.Phone) {
		errs.Add("phone", "phone must match +?1?digits, 9 to 15 digits")
	}
	if t.Email == "" {
		errs.Add("email", "email is required")
	} else if !IsValidEmail(t.Email) {
		errs.Add("email", "invalid email format")
	}
	if t.Passport == "" {
		errs.Add("passport", "passport is required")
	}
	if !hasTwoPlaces(t.Income) {
		errs.Add("income", "income must have at most 2 decimal places")
	}
	return errs
}

// Property validates a property record against the schema rules
func Property(p *models.Property) FieldErrors {
	errs := FieldErrors{}
	if p.OwnerID == 0 {
		errs.Add("owner", "owner is required")
	}
	if p.Title == "" {
		errs.Add("title", "title is required")
	} else if len(p.Title) > maxTitleLen {
		errs.Add("title", "title must be at most 100 characters")
	}
	if p.Address == "" {
		errs.Add("address", "address is required")
	}
	if p.PropertyType != "" && !p.PropertyType.Valid() {
		errs.Add("property_type", "property type must be apartment, house or commercial")
	}
	if p.Rooms < 0 {
		errs.Add("rooms", "rooms must not be negative")
	}
	if !hasTwoPlaces(p.Area) {
		errs.Add("area", "area must have at most 2 decimal places")
	}
	if !hasTwoPlaces(p.Price) {
		errs.Add("price", "price must have at most 2 decimal places")
	}
	return errs
}

// Contract validates a lease contract, including the date-ordering rule that the
// table also enforces as a standing constraint
func Contract(c *models.Contract) FieldErrors {
	errs := FieldErrors{}
	if c.PropertyID == 0 {
		errs.Add("property", "property is required")
	}
	if c.TenantID == 0 {
		errs.Add("tenant", "tenant is required")
	}
	if c.StartDate.IsZero() {
		errs.Add("start_date", "start date is required")
	}
	if c.EndDate.IsZero() {
		errs.Add("end_date", "end date is required")
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && !c.EndDate.After(c.StartDate) {
		errs.Add("end_date", "end date must be after start date")
	}
	if c.Status != "" && !c.Status.Valid() {
		errs.Add("status", "status must be active, completed or terminated")
	}
	if !hasTwoPlaces(c.MonthlyRent) {
		errs.Add("monthly_rent", "monthly rent must have at most 2 decimal places")
	}
	if !hasTwoPlaces(c.Deposit) {
		errs.Add("deposit", "deposit must have at most 2 decimal places")
	}
	return errs
}

// Payment validates a payment, including the period-ordering rule that the table
// also enforces as a standing constraint
func Payment(p *models.Payment) FieldErrors {
	errs := FieldErrors{}
	if p.ContractID == 0 {
		errs.Add("contract", "contract is required")
	}
	if !hasTwoPlaces(p.Amount) {
		errs.Add("amount", "amount must have at most 2 decimal places")
	}
	if p.PaymentDate.IsZero() {
		errs.Add("payment_date", "payment date is required")
	}
	if !p.PaymentMethod.Valid() {
		errs.Add("payment_method", "payment method must be cash, card or transfer")
	}
	if p.PeriodStart.IsZero() {
		errs.Add("period_start", "period start is required")
	}
	if p.PeriodEnd.IsZero() {
		errs.Add("period_end", "period end is required")
	}
	if !p.PeriodStart.IsZero() && !p.PeriodEnd.IsZero() && !p.PeriodEnd.After(p.PeriodStart) {
		errs.Add("period_end", "period end must be after period start")
	}
	return errs
}

// ParseDate parses a form-submitted date in YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
