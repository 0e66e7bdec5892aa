// Package db opens the GORM connection and migrates the schema.
package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	notebookentity "github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/domain/entity"
	userentity "github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain/entity"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Config holds the database connection parameters.
// For the sqlite driver only Name is used, as the database file path.
type Config struct {
	Driver         string        `koanf:"driver" validate:"oneof=postgres sqlite"`
	Host           string        `koanf:"host" validate:"required_if=Driver postgres"`
	Port           int           `koanf:"port"`
	User           string        `koanf:"user" validate:"required_if=Driver postgres"`
	Password       string        `koanf:"password"`
	Name           string        `koanf:"name" validate:"required"`
	SSLMode        string        `koanf:"ssl_mode"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	RunMigrations  bool          `koanf:"run_migrations"`
}

// Opener opens a database for a DSN. It is swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the connection string for cfg.Driver.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Name
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
}

// NewOpener returns the Opener for the configured driver.
// Error translation is enabled so unique violations surface as gorm.ErrDuplicatedKey.
// Query logs go to the global zerolog logger.
func NewOpener(driver string) (Opener, error) {
	gcfg := &gorm.Config{TranslateError: true, Logger: newGormLogger(log.Logger)}
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Warn().Err(err).Msg("db connect failed, retrying")
		time.Sleep(retryInterval)
	}
}

// Migrate creates or updates the tables for all persisted entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userentity.User{}, &notebookentity.Notebook{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Open connects using cfg and runs migrations when cfg.RunMigrations is set.
func Open(cfg Config) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Driver).Str("name", cfg.Name).Msg("database connected")

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}
