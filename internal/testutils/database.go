package testutils

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shchuropedia/wiki-service/internal/model"
	dbPkg "shchuropedia/wiki-service/pkg/database"
)

// SetupTestDB creates a test database connection.
// Defaults to a per-test in-memory SQLite database; set TEST_DATABASE_DSN
// to run the suite against Postgres instead.
// Automatically migrates all tables before returning the connection.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("TEST_DATABASE_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent), // Suppress logs in tests
			TranslateError: true,
		})
	} else {
		// cache=shared keeps the whole connection pool on one in-memory
		// database; a bare :memory: DSN gives every pooled connection its own.
		dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.New().String())
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err == nil {
			err = db.Exec("PRAGMA foreign_keys = ON").Error
		}
	}
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Initialize all tables
	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Return a transaction for automatic rollback
	tx := db.Begin()
	t.Cleanup(func() {
		tx.Rollback()
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return tx
}

// SetupTestRedis creates a test Redis connection.
// Returns nil if Redis is not available (tests can skip Redis-dependent features).
func SetupTestRedis(t *testing.T) *dbPkg.RedisClient {
	t.Helper()

	redisHost := getEnvOrDefault("REDIS_HOST", "localhost")
	redisPortStr := getEnvOrDefault("REDIS_PORT", "6380")
	redisPort, err := strconv.Atoi(redisPortStr)
	if err != nil || redisPort == 0 {
		redisPort = 6380
	}

	// Try to initialize Redis, but don't fail if it's not available
	redisClient, err := dbPkg.InitRedis(&dbPkg.RedisConfig{
		ServiceName: "wiki-service-test",
		Host:        redisHost,
		Port:        redisPort,
		Password:    "",
		DB:          0,
	})
	if err == nil && redisClient != nil {
		// Cleanup: flush Redis on test cleanup
		t.Cleanup(func() {
			redisClient.FlushDB(context.Background())
		})
		return redisClient
	}

	// Redis not available, return nil (tests can skip)
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
