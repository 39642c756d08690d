package migrations

import (
	"fmt"
	"log"
	"time"

	"brew_co/internal/database"
	"brew_co/internal/fixtures"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds every empty table from the
// fixtures used by mock mode.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := seedDefaultData(db, time.Now()); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedDefaultData(db *gorm.DB, now time.Time) error {
	products := fixtures.Products(now)
	stores := fixtures.Stores(now)
	users := fixtures.Users(now)
	staff := fixtures.Staff(now)
	inventory := fixtures.Inventory(now)
	orders, items := fixtures.Orders(now)
	reviews := fixtures.Reviews(now)
	campaigns := fixtures.Campaigns(now)
	notifications := fixtures.Notifications(now)

	tables := []struct {
		name string
		rows interface{}
	}{
		{"products", &products},
		{"stores", &stores},
		{"users", &users},
		{"staff", &staff},
		{"inventory", &inventory},
		{"orders", &orders},
		{"order_items", &items},
		{"reviews", &reviews},
		{"campaigns", &campaigns},
		{"notifications", &notifications},
	}

	for _, table := range tables {
		var count int64
		if err := db.Table(table.name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", table.name, err)
		}
		if count > 0 {
			log.Printf("Table %s already has %d rows, skipping seed", table.name, count)
			continue
		}
		if err := db.Create(table.rows).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %w", table.name, err)
		}
		log.Printf("Seeded %s", table.name)
	}
	return nil
}
