package repository

import (
	"context"
	"time"

	"resume-screener/internal/models"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, rec *models.CandidateRecord) error
	List(ctx context.Context) ([]models.CandidateRecord, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create appends a candidate record. The upload time is assigned here
// if the caller left it zero.
func (r *repository) Create(ctx context.Context, rec *models.CandidateRecord) error {
	if rec.UploadTime.IsZero() {
		rec.UploadTime = time.Now().UTC()
	}

	query := `
		INSERT INTO resumes (name, filename, category, score, branch, skills, upload_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		rec.Name,
		rec.Filename,
		rec.Category,
		rec.Score,
		rec.Branch,
		rec.Skills,
		rec.UploadTime,
	)
	if err != nil {
		return err
	}

	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}

	return nil
}

// List returns every record, newest first. The id tiebreak keeps the
// order deterministic for records sharing an upload time.
func (r *repository) List(ctx context.Context) ([]models.CandidateRecord, error) {
	query := `
		SELECT id, name, filename, category, score, branch, skills, upload_time
		FROM resumes
		ORDER BY upload_time DESC, id DESC
	`

	var records []models.CandidateRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}

	return records, nil
}
