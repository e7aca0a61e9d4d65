package configs

import (
	"log"

	"medmatch/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database selected by DB_DRIVER. TranslateError is on
// so unique-index violations come back as gorm.ErrDuplicatedKey on every driver.
func ConnectionDB(cfg *Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		dialector = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Doctor{}, &entity.Hospital{},
		&entity.Job{}, &entity.JobApplication{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
