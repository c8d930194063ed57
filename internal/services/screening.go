package services

import (
	"context"
	"path/filepath"
	"strings"

	"resume-screener/internal/config"
	"resume-screener/internal/extractor"
	"resume-screener/internal/models"
	"resume-screener/internal/repository"
	"resume-screener/internal/screening"
	"resume-screener/internal/storage"
	"resume-screener/internal/utils"
)

// minInstituteSkills is the acceptance floor for the institute-filter
// flow; the role-match flow gates on match percentage instead.
const minInstituteSkills = 2

type ScreeningService interface {
	FilterByInstitute(ctx context.Context, files []models.UploadedFile) (*models.InstituteResult, error)
	MatchRole(ctx context.Context, files []models.UploadedFile, jobTitle, skillsCSV string) (*models.RoleMatchResult, error)
	History(ctx context.Context) ([]models.CandidateRecord, error)
	GetFile(ctx context.Context, filename string) ([]byte, error)
}

type screeningService struct {
	repo    repository.Repository
	storage storage.Storage
	logger  *utils.Logger
	policy  screening.ScorePolicy
	mode    screening.MatchMode

	// extraction seam, swapped out in tests
	extract func(data []byte) (string, error)
}

func NewService(repo repository.Repository, store storage.Storage, cfg *config.Config, logger *utils.Logger) ScreeningService {
	return &screeningService{
		repo:    repo,
		storage: store,
		logger:  logger,
		policy:  screening.ScorePolicy(cfg.ScorePolicy),
		mode:    screening.MatchMode(cfg.SkillMatchMode),
		extract: extractor.ExtractPDF,
	}
}

// FilterByInstitute screens a batch of resumes against the data-analyst
// vocabulary and buckets accepted candidates by institute tier. Files
// are processed sequentially; a bad file is skipped, never fatal for
// the batch.
func (s *screeningService) FilterByInstitute(ctx context.Context, files []models.UploadedFile) (*models.InstituteResult, error) {
	result := &models.InstituteResult{
		IIT:   []models.InstituteEntry{},
		NIT:   []models.InstituteEntry{},
		Other: []models.InstituteEntry{},
	}

	cfg := screening.Config{
		ScorePolicy:       s.policy,
		MinSkills:         minInstituteSkills,
		ClassifyInstitute: true,
		Vocabulary:        screening.DataAnalystVocabulary,
		Branch:            "Data Analyst",
		MatchMode:         s.mode,
	}

	for _, file := range files {
		filename, text, ok := s.readResume(file)
		if !ok {
			continue
		}

		profile, accepted := screening.ExtractFields(text, cfg)
		if !accepted {
			s.logger.Debug("Candidate rejected", "filename", filename)
			continue
		}

		s.storeResume(ctx, filename, file.Data)

		rec := &models.CandidateRecord{
			Name:     profile.Name,
			Filename: filename,
			Category: string(profile.Institute),
			Score:    profile.Score,
			Branch:   profile.Branch,
			Skills:   strings.Join(screening.TitleSkills(profile.Skills), ", "),
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			// The computed result still goes into the response.
			s.logger.Error("Failed to persist candidate", "error", err, "filename", filename)
		}

		entry := models.InstituteEntry{
			Name:     profile.Name,
			Score:    profile.Score,
			Filename: filename,
		}

		switch profile.Institute {
		case screening.InstituteIIT:
			result.IIT = append(result.IIT, entry)
		case screening.InstituteNIT:
			result.NIT = append(result.NIT, entry)
		default:
			result.Other = append(result.Other, entry)
		}
	}

	return result, nil
}

// MatchRole scores a batch of resumes against the required skills for
// jobTitle (optionally extended by caller-supplied skills) and returns
// every candidate with coverage above 0%.
func (s *screeningService) MatchRole(ctx context.Context, files []models.UploadedFile, jobTitle, skillsCSV string) (*models.RoleMatchResult, error) {
	required := screening.ResolveRequiredSkills(jobTitle, skillsCSV)

	result := &models.RoleMatchResult{
		JobTitle:   jobTitle,
		Candidates: []models.RoleMatchEntry{},
	}

	for _, file := range files {
		filename, text, ok := s.readResume(file)
		if !ok {
			continue
		}

		matched, pct := screening.MatchSkills(text, required, s.mode)
		if pct <= 0 {
			s.logger.Debug("Candidate below match threshold", "filename", filename)
			continue
		}

		s.storeResume(ctx, filename, file.Data)

		result.Candidates = append(result.Candidates, models.RoleMatchEntry{
			Name:            screening.ExtractName(text),
			MatchedSkills:   strings.Join(matched, ", "),
			MatchPercentage: pct,
			Filename:        filename,
		})
	}

	return result, nil
}

func (s *screeningService) History(ctx context.Context) ([]models.CandidateRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list candidates", "error", err)
		return nil, utils.NewInternalError("Failed to retrieve history")
	}
	return records, nil
}

func (s *screeningService) GetFile(ctx context.Context, filename string) ([]byte, error) {
	sanitized := utils.SanitizeFilename(filename)
	if sanitized == "" {
		return nil, utils.NewBadRequestError("Invalid filename")
	}

	exists, err := s.storage.Exists(ctx, resumeKey(sanitized))
	if err != nil {
		s.logger.Error("Failed to stat resume", "error", err, "filename", sanitized)
		return nil, utils.NewInternalError("Failed to retrieve file")
	}
	if !exists {
		return nil, utils.NewNotFoundError("File not found")
	}

	data, err := s.storage.Download(ctx, resumeKey(sanitized))
	if err != nil {
		s.logger.Error("Failed to download resume", "error", err, "filename", sanitized)
		return nil, utils.NewInternalError("Failed to retrieve file")
	}

	return data, nil
}

// readResume applies the per-file gates: sanitized name, .pdf
// extension, non-empty content, readable text. Failures are skipped
// silently from the caller's view.
func (s *screeningService) readResume(file models.UploadedFile) (string, string, bool) {
	filename := utils.SanitizeFilename(file.Filename)
	if filename == "" || len(file.Data) == 0 {
		return "", "", false
	}

	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		s.logger.Debug("Skipping non-PDF file", "filename", filename)
		return "", "", false
	}

	text, err := s.extract(file.Data)
	if err != nil {
		// One unreadable PDF must not abort the batch.
		s.logger.Warn("Failed to extract text, skipping file", "error", err, "filename", filename)
		return "", "", false
	}

	return filename, text, true
}

// storeResume keeps the raw bytes for the file-retrieval endpoint. A
// storage failure is logged but never drops the computed result.
func (s *screeningService) storeResume(ctx context.Context, filename string, data []byte) {
	if err := s.storage.Upload(ctx, resumeKey(filename), data, "application/pdf"); err != nil {
		s.logger.Error("Failed to store resume", "error", err, "filename", filename)
	}
}

func resumeKey(filename string) string {
	return "resumes/" + filename
}
