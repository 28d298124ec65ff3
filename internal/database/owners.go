package database

import (
	"gorm.io/gorm"

	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// GetAllOwners retrieves all owners in default ordering
func (gdb *GormDB) GetAllOwners() ([]models.Owner, error) {
	var owners []models.Owner
	err := gdb.db.Order("last_name, first_name").Find(&owners).Error
	return owners, err
}

// GetOwnerByID retrieves an owner by ID
func (gdb *GormDB) GetOwnerByID(id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := gdb.db.First(&owner, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &owner, nil
}

// CreateOwner validates and inserts an owner. registration_date is assigned by
// the insert and never touched again.
func (gdb *GormDB) CreateOwner(o *models.Owner) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		errs := validators.Owner(o)
		if err := checkUnique(tx, &models.Owner{}, "email", o.Email, 0, errs); err != nil {
			return err
		}
		if err := checkUnique(tx, &models.Owner{}, "passport", o.Passport, 0, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		return tx.Create(o).Error
	})
}

// UpdateOwner validates and updates the mutable owner fields
func (gdb *GormDB) UpdateOwner(o *models.Owner) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Owner
		if err := tx.First(&existing, o.ID).Error; err != nil {
			return notFound(err)
		}
		errs := validators.Owner(o)
		if err := checkUnique(tx, &models.Owner{}, "email", o.Email, o.ID, errs); err != nil {
			return err
		}
		if err := checkUnique(tx, &models.Owner{}, "passport", o.Passport, o.ID, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		o.RegistrationDate = existing.RegistrationDate
		return tx.Model(&models.Owner{}).Where("id = ?", o.ID).
			Select("first_name", "last_name", "phone", "email", "passport").
			Updates(o).Error
	})
}

// DeleteOwner removes an owner and cascades to its properties, their contracts
// and their payments in a single transaction
func (gdb *GormDB) DeleteOwner(id uint, reason string) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, id).Error; err != nil {
			return notFound(err)
		}

		var propertyIDs []uint
		if err := tx.Model(&models.Property{}).Where("owner_id = ?", id).Pluck("id", &propertyIDs).Error; err != nil {
			return err
		}

		dependents, err := deleteContractsOfProperties(tx, propertyIDs)
		if err != nil {
			return err
		}
		dependents += len(propertyIDs)

		if len(propertyIDs) > 0 {
			if err := tx.Where("owner_id = ?", id).Delete(&models.Property{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Owner{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "owner", id, owner.FullName(), dependents, reason)
	})
}

// GetOwnerProperties retrieves all properties of an owner, newest first
func (gdb *GormDB) GetOwnerProperties(ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := gdb.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// checkUnique records a field error when value is already taken by another row
func checkUnique(tx *gorm.DB, model interface{}, column, value string, excludeID uint, errs validators.FieldErrors) error {
	if value == "" {
		return nil
	}
	var count int64
	q := tx.Model(model).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		errs.Add(column, column+" is already taken")
	}
	return nil
}
