package database

import "rental-portal/internal/models"

// GetRecentDeleteLogs retrieves the latest deletion audit rows
func (gdb *GormDB) GetRecentDeleteLogs(limit int) ([]models.DeleteLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []models.DeleteLog
	err := gdb.db.Order("deleted_at DESC, id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// CountRecords returns the row count for each registered entity table
func (gdb *GormDB) CountRecords() (map[string]int64, error) {
	counts := make(map[string]int64)
	tables := map[string]interface{}{
		"owners":     &models.Owner{},
		"properties": &models.Property{},
		"tenants":    &models.Tenant{},
		"contracts":  &models.Contract{},
		"payments":   &models.Payment{},
	}
	for name, model := range tables {
		var n int64
		if err := gdb.db.Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
