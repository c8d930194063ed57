package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"resume-screener/internal/models"
	"resume-screener/internal/screening"
	"resume-screener/internal/utils"
)

type fakeRepo struct {
	records    []models.CandidateRecord
	failCreate bool
}

func (f *fakeRepo) Create(ctx context.Context, rec *models.CandidateRecord) error {
	if f.failCreate {
		return errors.New("disk full")
	}
	rec.ID = int64(len(f.records) + 1)
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]models.CandidateRecord, error) {
	return f.records, nil
}

type fakeStorage struct {
	objects    map[string][]byte
	failUpload bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if f.failUpload {
		return errors.New("bucket unavailable")
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Download(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

// newTestService wires a service whose extractor treats file bytes as
// the already-extracted text, so tests do not need real PDFs.
func newTestService(repo *fakeRepo, store *fakeStorage) *screeningService {
	return &screeningService{
		repo:    repo,
		storage: store,
		logger:  utils.NewLogger("error"),
		policy:  screening.ScorePolicyThreshold,
		mode:    screening.MatchSubstring,
		extract: func(data []byte) (string, error) {
			if string(data) == "corrupt" {
				return "", fmt.Errorf("failed to create PDF reader")
			}
			return string(data), nil
		},
	}
}

func pdfFile(name, text string) models.UploadedFile {
	return models.UploadedFile{Filename: name, Data: []byte(text)}
}

const (
	iitText   = "Ravi Kumar\nIndian Institute of Technology Bombay\nCGPA: 9.5\nSkills: SQL, Excel, Python"
	nitText   = "Priya Singh\nNIT Trichy\nScored 95% in boards\nSkills: Tableau, Statistics"
	otherText = "Arjun Mehta\nDelhi University\nCGPA: 9.2\nSkills: Excel, Python, pandas"
)

func TestFilterByInstituteBuckets(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStorage()
	svc := newTestService(repo, store)

	result, err := svc.FilterByInstitute(context.Background(), []models.UploadedFile{
		pdfFile("ravi.pdf", iitText),
		pdfFile("priya.pdf", nitText),
		pdfFile("arjun.pdf", otherText),
	})
	if err != nil {
		t.Fatalf("FilterByInstitute returned error: %v", err)
	}

	if len(result.IIT) != 1 || result.IIT[0].Name != "Ravi Kumar" {
		t.Errorf("IIT = %+v, want one entry for Ravi Kumar", result.IIT)
	}
	if len(result.NIT) != 1 || result.NIT[0].Score != "95%" {
		t.Errorf("NIT = %+v, want one entry scoring 95%%", result.NIT)
	}
	if len(result.Other) != 1 || result.Other[0].Filename != "arjun.pdf" {
		t.Errorf("Other = %+v, want one entry for arjun.pdf", result.Other)
	}

	if len(repo.records) != 3 {
		t.Errorf("persisted %d records, want 3", len(repo.records))
	}
	if repo.records[0].Category != "IIT" || repo.records[0].Branch != "Data Analyst" {
		t.Errorf("record = %+v, want category IIT branch Data Analyst", repo.records[0])
	}
	if _, ok := store.objects["resumes/ravi.pdf"]; !ok {
		t.Error("raw resume was not stored")
	}
}

func TestFilterByInstituteSkipsNonPDF(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newFakeStorage())

	result, err := svc.FilterByInstitute(context.Background(), []models.UploadedFile{
		pdfFile("resume.docx", iitText),
		pdfFile("notes.txt", iitText),
		{Filename: "empty.pdf", Data: nil},
	})
	if err != nil {
		t.Fatalf("FilterByInstitute returned error: %v", err)
	}

	if len(result.IIT)+len(result.NIT)+len(result.Other) != 0 {
		t.Errorf("result = %+v, want all buckets empty", result)
	}
	if len(repo.records) != 0 {
		t.Errorf("persisted %d records, want 0", len(repo.records))
	}
}

func TestFilterByInstituteContinuesPastCorruptFile(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newFakeStorage())

	result, err := svc.FilterByInstitute(context.Background(), []models.UploadedFile{
		pdfFile("bad.pdf", "corrupt"),
		pdfFile("ravi.pdf", iitText),
	})
	if err != nil {
		t.Fatalf("FilterByInstitute returned error: %v", err)
	}

	if len(result.IIT) != 1 {
		t.Errorf("IIT = %+v, want the good file to survive the batch", result.IIT)
	}
}

func TestFilterByInstituteKeepsResultOnStoreFailure(t *testing.T) {
	repo := &fakeRepo{failCreate: true}
	store := newFakeStorage()
	store.failUpload = true
	svc := newTestService(repo, store)

	result, err := svc.FilterByInstitute(context.Background(), []models.UploadedFile{
		pdfFile("ravi.pdf", iitText),
	})
	if err != nil {
		t.Fatalf("FilterByInstitute returned error: %v", err)
	}

	if len(result.IIT) != 1 {
		t.Errorf("IIT = %+v, want computed result despite store failures", result.IIT)
	}
}

func TestFilterByInstituteRejectsLowScore(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newFakeStorage())

	text := "Ravi Kumar\nIIT Bombay\nCGPA: 8.0\nSkills: SQL, Excel, Python"
	result, _ := svc.FilterByInstitute(context.Background(), []models.UploadedFile{
		pdfFile("ravi.pdf", text),
	})

	if len(result.IIT) != 0 {
		t.Errorf("IIT = %+v, want rejection under threshold policy", result.IIT)
	}
}

func TestFilterByInstituteLenientPolicy(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newFakeStorage())
	svc.policy = screening.ScorePolicyLenient

	text := "Ravi Kumar\nIIT Bombay\nCGPA: 8.0\nSkills: SQL, Excel, Python"
	result, _ := svc.FilterByInstitute(context.Background(), []models.UploadedFile{
		pdfFile("ravi.pdf", text),
	})

	if len(result.IIT) != 1 || result.IIT[0].Score != "8.0 CGPA" {
		t.Errorf("IIT = %+v, want acceptance with score 8.0 CGPA", result.IIT)
	}
}

func TestMatchRole(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newFakeStorage())

	result, err := svc.MatchRole(context.Background(),
		[]models.UploadedFile{
			pdfFile("match.pdf", "John Doe\nKnows sql and python"),
			pdfFile("nomatch.pdf", "Jane Roe\nPainter and sculptor"),
		},
		"", "sql, excel, python")
	if err != nil {
		t.Fatalf("MatchRole returned error: %v", err)
	}

	if len(result.Candidates) != 1 {
		t.Fatalf("candidates = %+v, want exactly one", result.Candidates)
	}
	c := result.Candidates[0]
	if c.Name != "John Doe" {
		t.Errorf("Name = %q, want John Doe", c.Name)
	}
	if c.MatchedSkills != "sql, python" {
		t.Errorf("MatchedSkills = %q, want %q", c.MatchedSkills, "sql, python")
	}
	if c.MatchPercentage != 66.67 {
		t.Errorf("MatchPercentage = %v, want 66.67", c.MatchPercentage)
	}
}

func TestMatchRoleNoRequiredSkills(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newFakeStorage())

	result, err := svc.MatchRole(context.Background(),
		[]models.UploadedFile{pdfFile("any.pdf", iitText)},
		"Unknown Role", "")
	if err != nil {
		t.Fatalf("MatchRole returned error: %v", err)
	}

	if len(result.Candidates) != 0 {
		t.Errorf("candidates = %+v, want none with zero required skills", result.Candidates)
	}
}

func TestMatchRolePredefinedVocabulary(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newFakeStorage())

	result, err := svc.MatchRole(context.Background(),
		[]models.UploadedFile{pdfFile("ravi.pdf", iitText)},
		"Data Analyst", "")
	if err != nil {
		t.Fatalf("MatchRole returned error: %v", err)
	}

	if len(result.Candidates) != 1 {
		t.Fatalf("candidates = %+v, want one", result.Candidates)
	}
	if result.Candidates[0].MatchPercentage <= 0 {
		t.Errorf("MatchPercentage = %v, want > 0", result.Candidates[0].MatchPercentage)
	}
}

func TestGetFile(t *testing.T) {
	store := newFakeStorage()
	store.objects["resumes/ravi.pdf"] = []byte("%PDF-1.4 data")
	svc := newTestService(&fakeRepo{}, store)

	data, err := svc.GetFile(context.Background(), "ravi.pdf")
	if err != nil {
		t.Fatalf("GetFile returned error: %v", err)
	}
	if string(data) != "%PDF-1.4 data" {
		t.Errorf("data = %q, want stored bytes", data)
	}

	// Path traversal resolves to the same sanitized key.
	data, err = svc.GetFile(context.Background(), "../../ravi.pdf")
	if err != nil {
		t.Fatalf("GetFile with traversal returned error: %v", err)
	}
	if string(data) != "%PDF-1.4 data" {
		t.Errorf("data = %q, want stored bytes", data)
	}
}

func TestGetFileNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{}, newFakeStorage())

	_, err := svc.GetFile(context.Background(), "missing.pdf")
	appErr, ok := err.(*utils.AppError)
	if !ok || appErr.StatusCode != 404 {
		t.Errorf("err = %v, want 404 AppError", err)
	}
}
