package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cloud-kitchen-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config collects all environment-driven settings.
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    []byte
	TokenTTL     time.Duration
	MaxOpenConns int
	MaxIdleConns int
}

// Load reads configuration from the environment with local-dev fallbacks.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "cloud_kitchen.db"),
		JWTSecret:    []byte(getEnv("JWT_SECRET", "cloud_kitchen_super_secret_2024")),
		TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_HOURS", 8)) * time.Hour,
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 2),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Open connects to the database, bounds the connection pool and runs
// migrations. The returned handle is injected into the service layer;
// there is no package-level database state.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access pool: %w", err)
	}
	if strings.Contains(cfg.DBPath, ":memory:") {
		// each sqlite :memory: connection is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("close database: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("close database: %v", err)
	}
}
