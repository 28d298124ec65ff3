package database

import (
	"gorm.io/gorm"

	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// GetAllProperties retrieves all properties, newest first
func (gdb *GormDB) GetAllProperties() ([]models.Property, error) {
	var properties []models.Property
	err := gdb.db.Order("created_at DESC, id DESC").Find(&properties).Error
	return properties, err
}

// GetPropertyByID retrieves a property by ID
func (gdb *GormDB) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := gdb.db.First(&property, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &property, nil
}

// CreateProperty validates and inserts a property. created_at is assigned by the
// insert and never touched again.
func (gdb *GormDB) CreateProperty(p *models.Property) error {
	if p.PropertyType == "" {
		p.PropertyType = models.PropertyTypeApartment
	}
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		errs := validators.Property(p)
		if err := checkOwnerExists(tx, p.OwnerID, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

// UpdateProperty validates and updates the mutable property fields
func (gdb *GormDB) UpdateProperty(p *models.Property) error {
	if p.PropertyType == "" {
		p.PropertyType = models.PropertyTypeApartment
	}
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Property
		if err := tx.First(&existing, p.ID).Error; err != nil {
			return notFound(err)
		}
		errs := validators.Property(p)
		if err := checkOwnerExists(tx, p.OwnerID, errs); err != nil {
			return err
		}
		if err := errs.OrNil(); err != nil {
			return err
		}
		p.CreatedAt = existing.CreatedAt
		return tx.Model(&models.Property{}).Where("id = ?", p.ID).
			Select("owner_id", "title", "description", "address", "property_type",
				"area", "rooms", "price", "is_available").
			Updates(p).Error
	})
}

// DeleteProperty removes a property and cascades to its contracts and their
// payments in a single transaction
func (gdb *GormDB) DeleteProperty(id uint, reason string) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, id).Error; err != nil {
			return notFound(err)
		}

		dependents, err := deleteContractsOfProperties(tx, []uint{id})
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Property{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "property", id, property.Title, dependents, reason)
	})
}

// GetPropertyContracts retrieves all contracts of a property, newest start date first
func (gdb *GormDB) GetPropertyContracts(propertyID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := gdb.db.Where("property_id = ?", propertyID).Order("start_date DESC").Find(&contracts).Error
	return contracts, err
}

// deleteContractsOfProperties removes all contracts of the given properties and
// their payments, returning how many rows went with them
func deleteContractsOfProperties(tx *gorm.DB, propertyIDs []uint) (int, error) {
	if len(propertyIDs) == 0 {
		return 0, nil
	}
	var contractIDs []uint
	if err := tx.Model(&models.Contract{}).Where("property_id IN ?", propertyIDs).Pluck("id", &contractIDs).Error; err != nil {
		return 0, err
	}
	dependents, err := deletePaymentsOfContracts(tx, contractIDs)
	if err != nil {
		return 0, err
	}
	if len(contractIDs) > 0 {
		if err := tx.Where("property_id IN ?", propertyIDs).Delete(&models.Contract{}).Error; err != nil {
			return 0, err
		}
	}
	return dependents + len(contractIDs), nil
}

// checkOwnerExists records a field error when the referenced owner is missing
func checkOwnerExists(tx *gorm.DB, ownerID uint, errs validators.FieldErrors) error {
	if ownerID == 0 {
		return nil // required-field error already recorded by the validator
	}
	var count int64
	if err := tx.Model(&models.Owner{}).Where("id = ?", ownerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		errs.Add("owner", "owner does not exist")
	}
	return nil
}
