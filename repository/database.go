package repository

import (
	"fmt"

	"restaurant-api/config"
	"restaurant-api/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB initializes and returns a GORM database instance.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // duplicate-key violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema and seeds the role groups.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
		&models.Group{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}

	for _, name := range []string{models.GroupManager, models.GroupDeliveryCrew} {
		var group models.Group
		if db.Where("name = ?", name).First(&group).Error != nil {
			if err := db.Create(&models.Group{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed group %s: %w", name, err)
			}
		}
	}

	return nil
}
