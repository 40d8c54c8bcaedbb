package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

// ConnectDB opens the relational store. The handle is passed explicitly to
// whoever needs it; there is no package-level connection singleton.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite", "":
		dial = sqlite.Open(cfg.DBSource)
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Session{},
		&entity.Category{}, &entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.ContactSubmission{}, &entity.Testimonial{},
	)
}
