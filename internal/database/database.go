package database

import (
	"fmt"
	"time"

	pkgLogger "github.com/sjperalta/fintera-amortization/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection
type Options struct {
	Production    bool
	SlowThreshold time.Duration
	MaxIdleConns  int
	MaxOpenConns  int
}

// DefaultOptions returns the pool settings used by the API server
func DefaultOptions(production bool) Options {
	return Options{
		Production:    production,
		SlowThreshold: 200 * time.Millisecond,
		MaxIdleConns:  5,
		MaxOpenConns:  50,
	}
}

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string, opts Options) (*gorm.DB, error) {
	// SQL tracing only outside production
	logLevel := logger.Warn
	if !opts.Production {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 pkgLogger.NewGormLogger(logLevel, opts.SlowThreshold),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
