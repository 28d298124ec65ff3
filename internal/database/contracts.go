package database

import (
	"fmt"

	"gorm.io/gorm"

	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// GetAllContracts retrieves all contracts, newest start date first
func (gdb *GormDB) GetAllContracts() ([]models.Contract, error) {
	var contracts []models.Contract
	err := gdb.db.Order("start_date DESC, id DESC").Find(&contracts).Error
	return contracts, err
}

// GetContractByID retrieves a contract by ID
func (gdb *GormDB) GetContractByID(id uint) (*models.Contract, error) {
	var contract models.Contract
	if err := gdb.db.First(&contract, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &contract, nil
}

// CreateContract validates and inserts a lease contract
func (gdb *GormDB) CreateContract(c *models.Contract) error {
	if c.Status == "" {
		c.Status = models.ContractStatusActive
	}
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		errs := validators.Contract(c)
		if err := checkContractRefs(tx, c, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		return tx.Create(c).Error
	})
}

// UpdateContract validates and updates the mutable contract fields
func (gdb *GormDB) UpdateContract(c *models.Contract) error {
	if c.Status == "" {
		c.Status = models.ContractStatusActive
	}
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Contract
		if err := tx.First(&existing, c.ID).Error; err != nil {
			return notFound(err)
		}
		errs := validators.Contract(c)
		if err := checkContractRefs(tx, c, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		c.CreatedAt = existing.CreatedAt
		return tx.Model(&models.Contract{}).Where("id = ?", c.ID).
			Select("property_id", "tenant_id", "start_date", "end_date",
				"monthly_rent", "deposit", "status").
			Updates(c).Error
	})
}

// DeleteContract removes a contract and cascades to its payments in a single
// transaction
func (gdb *GormDB) DeleteContract(id uint, reason string) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := tx.First(&contract, id).Error; err != nil {
			return notFound(err)
		}

		dependents, err := deletePaymentsOfContracts(tx, []uint{id})
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Contract{}, id).Error; err != nil {
			return err
		}
		label := fmt.Sprintf("contract #%d", id)
		return logDeletion(tx, "contract", id, label, dependents, reason)
	})
}

// GetContractPayments retrieves all payments of a contract, newest first
func (gdb *GormDB) GetContractPayments(contractID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := gdb.db.Where("contract_id = ?", contractID).Order("payment_date DESC, id DESC").Find(&payments).Error
	return payments, err
}

// checkContractRefs records field errors for missing property or tenant references
func checkContractRefs(tx *gorm.DB, c *models.Contract, errs validators.FieldErrors) error {
	if c.PropertyID != 0 {
		var count int64
		if err := tx.Model(&models.Property{}).Where("id = ?", c.PropertyID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			errs.Add("property", "property does not exist")
		}
	}
	if c.TenantID != 0 {
		var count int64
		if err := tx.Model(&models.Tenant{}).Where("id = ?", c.TenantID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			errs.Add("tenant", "tenant does not exist")
		}
	}
	return nil
}
