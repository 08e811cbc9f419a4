package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "workbase.com/workbase/internal/models"
)

func NewDatabaseClient(driver, dsn string) *gorm.DB {
	db, err := OpenDatabase(driver, dsn)
	if err != nil {
		log.Fatal().Err(err).Str("driver", driver).Msg("db open failed")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	return db
}

func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}
