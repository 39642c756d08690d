package main

import (
	"flag"
	"fmt"
	"log"

	"brew_co/internal/config"
	"brew_co/internal/database"
	"brew_co/internal/migrations"
	"brew_co/internal/models"
)

func main() {
	reset := flag.Bool("reset", false, "drop every table before migrating")
	flag.Parse()

	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()
	if !cfg.RemoteConfigured() {
		log.Fatal("REMOTE_DB_URL and REMOTE_DB_KEY must be set to initialize the remote backend")
	}

	// Initialize database
	db, err := database.Initialize(cfg.RemoteDriver, cfg.RemoteURL, cfg.RemoteKey)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if *reset {
		fmt.Println("Dropping existing tables...")
		err = db.Migrator().DropTable(
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
		if err != nil {
			log.Printf("Warning: Error dropping tables: %v", err)
		}
	}

	fmt.Println("Creating tables and seeding data...")
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
