package database

import (
	"gorm.io/gorm"

	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// GetAllTenants retrieves all tenants in default ordering
func (gdb *GormDB) GetAllTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := gdb.db.Order("last_name, first_name").Find(&tenants).Error
	return tenants, err
}

// GetTenantByID retrieves a tenant by ID
func (gdb *GormDB) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := gdb.db.First(&tenant, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &tenant, nil
}

// CreateTenant validates and inserts a tenant
func (gdb *GormDB) CreateTenant(t *models.Tenant) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		errs := validators.Tenant(t)
		if err := checkUnique(tx, &models.Tenant{}, "email", t.Email, 0, errs); err != nil {
			return err
		}
		if err := checkUnique(tx, &models.Tenant{}, "passport", t.Passport, 0, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

// UpdateTenant validates and updates the mutable tenant fields
func (gdb *GormDB) UpdateTenant(t *models.Tenant) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Tenant
		if err := tx.First(&existing, t.ID).Error; err != nil {
			return notFound(err)
		}
		errs := validators.Tenant(t)
		if err := checkUnique(tx, &models.Tenant{}, "email", t.Email, t.ID, errs); err != nil {
			return err
		}
		if err := checkUnique(tx, &models.Tenant{}, "passport", t.Passport, t.ID, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		t.RegistrationDate = existing.RegistrationDate
		return tx.Model(&models.Tenant{}).Where("id = ?", t.ID).
			Select("first_name", "last_name", "phone", "email", "passport", "income").
			Updates(t).Error
	})
}

// DeleteTenant removes a tenant and cascades to its contracts and their payments
// in a single transaction
func (gdb *GormDB) DeleteTenant(id uint, reason string) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, id).Error; err != nil {
			return notFound(err)
		}

		var contractIDs []uint
		if err := tx.Model(&models.Contract{}).Where("tenant_id = ?", id).Pluck("id", &contractIDs).Error; err != nil {
			return err
		}

		dependents, err := deletePaymentsOfContracts(tx, contractIDs)
		if err != nil {
			return err
		}
		dependents += len(contractIDs)

		if len(contractIDs) > 0 {
			if err := tx.Where("tenant_id = ?", id).Delete(&models.Contract{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Tenant{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "tenant", id, tenant.FullName(), dependents, reason)
	})
}

// GetTenantContracts retrieves all contracts of a tenant, newest start date first
func (gdb *GormDB) GetTenantContracts(tenantID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := gdb.db.Where("tenant_id = ?", tenantID).Order("start_date DESC").Find(&contracts).Error
	return contracts, err
}
