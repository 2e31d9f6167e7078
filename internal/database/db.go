package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-application-tracker/internal/models"
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	logrus.Info("Database connection established")

	if err := db.AutoMigrate(&models.JobApplication{}); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}
