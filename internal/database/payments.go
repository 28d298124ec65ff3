package database

import (
	"fmt"

	"gorm.io/gorm"

	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// GetAllPayments retrieves all payments, newest first
func (gdb *GormDB) GetAllPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := gdb.db.Order("payment_date DESC, id DESC").Find(&payments).Error
	return payments, err
}

// GetPaymentByID retrieves a payment by ID
func (gdb *GormDB) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := gdb.db.First(&payment, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &payment, nil
}

// CreatePayment validates and inserts a payment
func (gdb *GormDB) CreatePayment(p *models.Payment) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		errs := validators.Payment(p)
		if err := checkContractExists(tx, p.ContractID, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

// UpdatePayment validates and updates the mutable payment fields
func (gdb *GormDB) UpdatePayment(p *models.Payment) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Payment
		if err := tx.First(&existing, p.ID).Error; err != nil {
			return notFound(err)
		}
		errs := validators.Payment(p)
		if err := checkContractExists(tx, p.ContractID, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		p.CreatedAt = existing.CreatedAt
		return tx.Model(&models.Payment{}).Where("id = ?", p.ID).
			Select("contract_id", "amount", "payment_date", "payment_method",
				"period_start", "period_end", "is_confirmed").
			Updates(p).Error
	})
}

// DeletePayment removes a single payment
func (gdb *GormDB) DeletePayment(id uint, reason string) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Delete(&models.Payment{}, id).Error; err != nil {
			return err
		}
		label := fmt.Sprintf("payment #%d", id)
		return logDeletion(tx, "payment", id, label, 0, reason)
	})
}

// deletePaymentsOfContracts removes all payments of the given contracts,
// returning how many rows were removed
func deletePaymentsOfContracts(tx *gorm.DB, contractIDs []uint) (int, error) {
	if len(contractIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := tx.Model(&models.Payment{}).Where("contract_id IN ?", contractIDs).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		if err := tx.Where("contract_id IN ?", contractIDs).Delete(&models.Payment{}).Error; err != nil {
			return 0, err
		}
	}
	return int(count), nil
}

// checkContractExists records a field error when the referenced contract is missing
func checkContractExists(tx *gorm.DB, contractID uint, errs validators.FieldErrors) error {
	if contractID == 0 {
		return nil // required-field error already recorded by the validator
	}
	var count int64
	if err := tx.Model(&models.Contract{}).Where("id = ?", contractID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		errs.Add("contract", "contract does not exist")
	}
	return nil
}
