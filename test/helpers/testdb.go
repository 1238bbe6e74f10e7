package helpers

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pharmacare_backend/database"
)

// SetupTestDB connects to the database named by TEST_DATABASE_URL, runs
// migrations and truncates every table. Tests are skipped when the
// variable is unset so the unit suite runs without infrastructure.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cleanTables(t, db)
	return db
}

func cleanTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []string{
		"order_items",
		"orders",
		"reviews",
		"prescriptions",
		"refresh_tokens",
		"medicines",
		"categories",
		"brands",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
