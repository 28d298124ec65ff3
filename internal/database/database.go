package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-portal/internal/config"
	"rental-portal/internal/models"
)

// ErrNotFound is returned when an identity-based lookup matches no row
var ErrNotFound = errors.New("record not found")

type GormDB struct {
	db *gorm.DB
}

// New opens the database configured in cfg and verifies the connection
func New(cfg *config.DatabaseConfig, logQueries bool) (*GormDB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.MySQL.User, cfg.MySQL.Password, cfg.MySQL.Host, cfg.MySQL.Port, cfg.MySQL.Database)
		dialector = mysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password,
			cfg.Postgres.Database, cfg.Postgres.SSLMode)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLite.Path + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}

	logLevel := logger.Warn
	if logQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormDB{db: db}, nil
}

// NewFromDB creates a GormDB wrapper from an existing gorm.DB instance
func NewFromDB(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

// DB returns the underlying gorm.DB instance
func (gdb *GormDB) DB() *gorm.DB {
	return gdb.db
}

func (gdb *GormDB) Close() error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables, indexes and check constraints using GORM AutoMigrate
func (gdb *GormDB) InitSchema() error {
	return gdb.db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.Tenant{},
		&models.Contract{},
		&models.Payment{},
		&models.DeleteLog{},
	)
}

// notFound maps gorm's record-not-found to the package sentinel
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// logDeletion writes a deletion audit row inside the cascade transaction
func logDeletion(tx *gorm.DB, entity string, recordID uint, label string, dependents int, reason string) error {
	entry := models.DeleteLog{
		Entity:     entity,
		RecordID:   recordID,
		Label:      label,
		Dependents: dependents,
		Reason:     reason,
	}
	return tx.Create(&entry).Error
}
