package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/config"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},

		// Floor and menu entities
		&entity.Table{},
		&entity.MenuCategory{},
		&entity.MenuItem{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.PaymentPart{},

		// Printing and system entities
		&entity.PrinterProfile{},
		&entity.VenueSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, permissions, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := []entity.Permission{
		{Name: "view-dashboard", GuardName: "web"},
		{Name: "manage-menu", GuardName: "web"},
		{Name: "manage-tables", GuardName: "web"},
		{Name: "manage-orders", GuardName: "web"},
		{Name: "submit-payments", GuardName: "web"},
		{Name: "manage-printers", GuardName: "web"},
		{Name: "manage-settings", GuardName: "web"},
		{Name: "manage-users", GuardName: "web"},
		{Name: "view-reports", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// Create admin role with all permissions
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			GuardName:   "web",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	pickPermissions := func(names []string) []entity.Permission {
		var picked []entity.Permission
		for _, name := range names {
			for _, p := range allPermissions {
				if p.Name == name {
					picked = append(picked, p)
					break
				}
			}
		}
		return picked
	}

	// Cashiers run the register: orders, payments, dashboard
	var cashierRole entity.Role
	if err := db.Where("name = ?", "cashier").First(&cashierRole).Error; err != nil {
		cashierRole = entity.Role{
			Name:      "cashier",
			GuardName: "web",
			Permissions: pickPermissions([]string{
				"view-dashboard",
				"manage-orders",
				"submit-payments",
			}),
		}
		if err := db.Create(&cashierRole).Error; err != nil {
			log.Printf("Warning: failed to create cashier role: %v", err)
		}
	}

	// Waiters open and edit orders but never settle them
	var waiterRole entity.Role
	if err := db.Where("name = ?", "waiter").First(&waiterRole).Error; err != nil {
		waiterRole = entity.Role{
			Name:      "waiter",
			GuardName: "web",
			Permissions: pickPermissions([]string{
				"manage-orders",
			}),
		}
		if err := db.Create(&waiterRole).Error; err != nil {
			log.Printf("Warning: failed to create waiter role: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			// Hash the password
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var aRole entity.Role
				if err := db.Where("name = ?", "admin").First(&aRole).Error; err == nil {
					if adminName == "" {
						adminName = "Admin"
					}
					// Split admin name into first and last name
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{aRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	// Ensure the venue settings row exists
	var settings entity.VenueSettings
	if err := db.Order("created_at ASC").First(&settings).Error; err != nil {
		settings = entity.VenueSettings{}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create default venue settings: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
