package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aebalz/mindwell-backend/internal/config"
	"github.com/aebalz/mindwell-backend/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB initializes the database connection using GORM. The returned
// handle is constructed once at process start and passed to every component
// that needs it.
func ConnectDB(cfg *config.AppConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSslMode,
		cfg.DBTimezone,
	)

	logLevel := logger.Silent
	if cfg.AppEnv == "development" {
		logLevel = logger.Info
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established successfully.")
	return db, nil
}

// MigrateDB runs GORM auto-migrations for the defined models.
// In a production environment, a more robust migration tool (like golang-migrate/migrate) is recommended.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	err := db.AutoMigrate(
		&model.User{},
		&model.CheckIn{},
		&model.JournalEntry{},
		&model.ProgressMetric{},
		&model.Feedback{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	for _, table := range []string{"users", "checkins", "journal_entries", "progress_metrics", "feedback"} {
		log.Printf("Database table %s ready: %t", table, db.Migrator().HasTable(table))
	}
	return nil
}

// CloseDB closes the database connection.
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed.")
	}
}

// PingDB checks the database connection.
func PingDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB for ping: %w", err)
	}
	return sqlDB.Ping()
}
