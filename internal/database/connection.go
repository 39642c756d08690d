package database

import (
	"fmt"
	"log"
	"net/url"

	"brew_co/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Initialize connects to the remote backend. The access key is injected as
// the connection password so it never has to live inside the URL.
func Initialize(driver, databaseURL, accessKey string) (*gorm.DB, error) {
	switch driver {
	case DriverSQLite:
		return Open(sqlite.Open(databaseURL), logger.Warn)
	case DriverPostgres, "":
		dsn, err := withAccessKey(databaseURL, accessKey)
		if err != nil {
			return nil, err
		}
		return Open(postgres.Open(dsn), logger.Warn)
	default:
		return nil, fmt.Errorf("unsupported remote driver %q", driver)
	}
}

// Open connects through the given dialector and migrates the schema.
func Open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Store{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.Review{},
		&models.Campaign{},
		&models.NotificationHistoryItem{},
	)
}

func withAccessKey(databaseURL, accessKey string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid remote url: %w", err)
	}
	if accessKey == "" {
		return u.String(), nil
	}
	username := "postgres"
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, accessKey)
	return u.String(), nil
}
