//go:build integration

package db

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM analysis_runs WHERE job_title_guess LIKE 'integration-test%'")

	return db
}

func saveTestRun(t *testing.T, db *DB, title string, score int) uuid.UUID {
	t.Helper()

	result := map[string]any{"match_score": score, "mode": "baseline"}
	id, err := db.SaveRun(context.Background(), "resume summary", title, score, result)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	return id
}

func TestIntegration_Run_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	t.Run("save and fetch latest", func(t *testing.T) {
		id := saveTestRun(t, db, "integration-test latest", 75)

		run, err := db.LatestRun(ctx)
		if err != nil {
			t.Fatalf("LatestRun failed: %v", err)
		}
		if run == nil {
			t.Fatal("LatestRun returned nil after insert")
		}
		if run.ID != id {
			t.Errorf("LatestRun ID = %v, want %v", run.ID, id)
		}
		if run.MatchScore != 75 {
			t.Errorf("MatchScore = %d, want 75", run.MatchScore)
		}

		var doc map[string]any
		if err := json.Unmarshal(run.Result, &doc); err != nil {
			t.Fatalf("Result is not valid JSON: %v", err)
		}
		if doc["mode"] != "baseline" {
			t.Errorf("Result mode = %v, want baseline", doc["mode"])
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		saveTestRun(t, db, "integration-test older", 10)
		newest := saveTestRun(t, db, "integration-test newer", 20)

		runs, err := db.ListRuns(ctx, 2)
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("len(runs) = %d, want 2", len(runs))
		}
		if runs[0].ID != newest {
			t.Errorf("runs[0].ID = %v, want newest %v", runs[0].ID, newest)
		}
	})

	t.Run("delete run", func(t *testing.T) {
		id := saveTestRun(t, db, "integration-test delete", 50)

		deleted, err := db.DeleteRun(ctx, id)
		if err != nil {
			t.Fatalf("DeleteRun failed: %v", err)
		}
		if !deleted {
			t.Error("DeleteRun = false, want true for existing run")
		}

		deleted, err = db.DeleteRun(ctx, id)
		if err != nil {
			t.Fatalf("DeleteRun on missing row failed: %v", err)
		}
		if deleted {
			t.Error("DeleteRun = true, want false for missing run")
		}
	})

	t.Run("clear runs", func(t *testing.T) {
		saveTestRun(t, db, "integration-test clear", 5)

		if err := db.ClearRuns(ctx); err != nil {
			t.Fatalf("ClearRuns failed: %v", err)
		}

		run, err := db.LatestRun(ctx)
		if err != nil {
			t.Fatalf("LatestRun failed: %v", err)
		}
		if run != nil {
			t.Errorf("LatestRun = %+v, want nil after clear", run)
		}
	})
}
