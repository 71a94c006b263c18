package integration

import (
	"context"
	"log"
	"os"
	"testing"
)

var testDB *TestDB

func TestMain(m *testing.M) {
	if os.Getenv("SKIP_INTEGRATION") != "" {
		os.Exit(0)
	}

	ctx := context.Background()

	db, err := SetupTestDatabase(ctx)
	if err != nil {
		log.Fatalf("failed to set up test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if err := testDB.Teardown(ctx); err != nil {
		log.Printf("teardown failed: %v", err)
	}

	os.Exit(code)
}

func cleanup(t *testing.T) {
	t.Helper()
	if err := testDB.CleanupTables(context.Background()); err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}
