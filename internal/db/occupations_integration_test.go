//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/career-compass/internal/types"
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

	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	// Clean slate before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM occupations")

	return db
}

func integrationFixture() []types.OccupationRecord {
	return []types.OccupationRecord{
		{
			SOCCode: "15-1252",
			Title:   "Software Developers",
			Metadata: &types.OccupationMetadata{
				CareerCluster: types.ClusterStem,
				Keywords:      []string{"software"},
			},
		},
		{
			SOCCode: "29-1141",
			Title:   "Registered Nurses",
			Metadata: &types.OccupationMetadata{
				CareerCluster: types.ClusterHealthcare,
				Keywords:      []string{"nursing"},
			},
		},
		{
			SOCCode: "31-1131",
			Title:   "Nursing Assistants",
			Metadata: &types.OccupationMetadata{
				CareerCluster: types.ClusterHealthcare,
				Keywords:      []string{"nursing"},
			},
		},
	}
}

func TestIntegration_Occupations_ReplaceAndGet(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ReplaceOccupations(ctx, integrationFixture()); err != nil {
		t.Fatalf("ReplaceOccupations failed: %v", err)
	}

	rec, err := db.GetOccupation(ctx, "15-1252")
	if err != nil {
		t.Fatalf("GetOccupation failed: %v", err)
	}
	if rec == nil {
		t.Fatal("Expected occupation, got nil")
	}
	if rec.Title != "Software Developers" {
		t.Errorf("Title = %q, want 'Software Developers'", rec.Title)
	}
	if rec.Metadata == nil || rec.Metadata.CareerCluster != types.ClusterStem {
		t.Errorf("Metadata = %+v, want stem cluster", rec.Metadata)
	}

	missing, err := db.GetOccupation(ctx, "99-9999")
	if err != nil {
		t.Fatalf("GetOccupation failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown SOC code")
	}
}

func TestIntegration_Occupations_ReplaceIsWholesale(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ReplaceOccupations(ctx, integrationFixture()); err != nil {
		t.Fatalf("ReplaceOccupations failed: %v", err)
	}
	if err := db.ReplaceOccupations(ctx, integrationFixture()[:1]); err != nil {
		t.Fatalf("second ReplaceOccupations failed: %v", err)
	}

	_, total, err := db.ListOccupations(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListOccupations failed: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
}

func TestIntegration_Occupations_ListFilters(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ReplaceOccupations(ctx, integrationFixture()); err != nil {
		t.Fatalf("ReplaceOccupations failed: %v", err)
	}

	records, total, err := db.ListOccupations(ctx, ListOptions{Cluster: types.ClusterHealthcare})
	if err != nil {
		t.Fatalf("ListOccupations failed: %v", err)
	}
	if total != 2 || len(records) != 2 {
		t.Errorf("got %d/%d healthcare rows, want 2/2", len(records), total)
	}

	records, total, err = db.ListOccupations(ctx, ListOptions{Query: "nurses"})
	if err != nil {
		t.Fatalf("ListOccupations failed: %v", err)
	}
	if total != 1 || records[0].SOCCode != "29-1141" {
		t.Errorf("query filter returned %v (total %d)", records, total)
	}

	records, total, err = db.ListOccupations(ctx, ListOptions{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("ListOccupations failed: %v", err)
	}
	if total != 3 || len(records) != 1 {
		t.Errorf("pagination returned %d rows (total %d), want 1 row of 3", len(records), total)
	}
}

func TestIntegration_Occupations_CountByCluster(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if err := db.ReplaceOccupations(ctx, integrationFixture()); err != nil {
		t.Fatalf("ReplaceOccupations failed: %v", err)
	}

	counts, err := db.CountByCluster(ctx)
	if err != nil {
		t.Fatalf("CountByCluster failed: %v", err)
	}
	if counts[types.ClusterHealthcare] != 2 || counts[types.ClusterStem] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
