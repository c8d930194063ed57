package repository

import (
	"context"
	"testing"
	"time"

	"resume-screener/internal/models"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE resumes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    filename TEXT,
    category TEXT,
    score TEXT,
    branch TEXT,
    skills TEXT,
    upload_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	rec := &models.CandidateRecord{
		Name:     "Ravi Kumar",
		Filename: "ravi.pdf",
		Category: "IIT",
		Score:    "9.5 CGPA",
		Branch:   "Data Analyst",
		Skills:   "Sql, Excel, Python",
	}

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if rec.ID == 0 {
		t.Error("Create did not assign an id")
	}
	if rec.UploadTime.IsZero() {
		t.Error("Create did not assign an upload time")
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	t1 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	older := &models.CandidateRecord{Name: "First", Filename: "a.pdf", UploadTime: t1}
	newer := &models.CandidateRecord{Name: "Second", Filename: "b.pdf", UploadTime: t2}

	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Name != "Second" || records[1].Name != "First" {
		t.Errorf("order = [%s, %s], want newest first", records[0].Name, records[1].Name)
	}
}

func TestListEmpty(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}
