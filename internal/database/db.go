package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobdeck/job-deck/internal/models"
)

// Connect opens the Postgres database and runs migrations. It exits the
// process on failure, mirroring how the server is meant to fail fast at
// boot.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	logrus.Info("database connection established")

	if err := Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}
	return db
}

// Migrate creates or updates the tables. Called by Connect and directly by
// tests that run on sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Job{}, &models.Activity{})
}
