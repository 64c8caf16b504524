package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"parcels/internal/adapters/out/gormstore"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store drivers accepted in DELIVERY_STORE and --store.
const (
	StoreCSV      = "csv"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Store           string `validate:"oneof=csv sqlite postgres"`
	DeliveryFile    string `validate:"required_if=Store csv"`
	SQLitePath      string `validate:"required_if=Store sqlite"`
	DBHost          string `validate:"required_if=Store postgres"`
	DBPort          string `validate:"omitempty,numeric"`
	DBUser          string `validate:"required_if=Store postgres"`
	DBPassword      string
	DBName          string       `validate:"required_if=Store postgres"`
	DBSslMode       string       `validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	RatePerKilogram kernel.Money `validate:"gt=0,lte=100000000"`
	UniqueIDs       bool
	LogLevel        string `validate:"oneof=debug info warn error"`
}

// LoadConfig reads the environment, after merging a .env file from the
// working directory when one exists, and validates the result.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	rate, rateErr := kernel.ParseMoney(getEnv("RATE_PER_KG", "50"))
	uniqueIDs, uniqueErr := strconv.ParseBool(getEnv("UNIQUE_IDS", "false"))
	if uniqueErr != nil {
		uniqueErr = fmt.Errorf("UNIQUE_IDS: %w", uniqueErr)
	}
	if err := errors.Join(rateErr, uniqueErr); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Store:           strings.ToLower(getEnv("DELIVERY_STORE", StoreCSV)),
		DeliveryFile:    getEnv("DELIVERY_FILE", "deliveries.csv"),
		SQLitePath:      getEnv("DELIVERY_SQLITE_PATH", "deliveries.db"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "parcels"),
		DBSslMode:       getEnv("DB_SSLMODE", "disable"),
		RatePerKilogram: rate,
		UniqueIDs:       uniqueIDs,
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "warn")),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

// WithOverrides applies the --store and --file flags. An empty value keeps
// the configured one; file targets the path of the selected driver.
func (c Config) WithOverrides(store, file string) Config {
	if store != "" {
		c.Store = strings.ToLower(store)
	}
	if file != "" {
		switch c.Store {
		case StoreSQLite:
			c.SQLitePath = file
		default:
			c.DeliveryFile = file
		}
	}
	return c
}

func (c Config) Postgres() gormstore.PostgresConfig {
	return gormstore.PostgresConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) Pricing() services.Pricing {
	return services.NewPricing(c.RatePerKilogram)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}
