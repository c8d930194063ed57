package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseFile  string
	MigrationsDir string
	LogLevel      string

	// S3
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Screening
	ScorePolicy    string
	SkillMatchMode string

	// Upload limits
	MaxFileSize int64
}

func Load() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseFile:      getEnv("DATABASE_FILE", "data/resumes.db"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "internal/db/migrations"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "resumes"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		ScorePolicy:       getEnv("SCORE_POLICY", "threshold"),
		SkillMatchMode:    getEnv("SKILL_MATCH_MODE", "substring"),
		MaxFileSize:       10 * 1024 * 1024,
	}

	if cfg.ScorePolicy != "threshold" && cfg.ScorePolicy != "lenient" {
		return nil, fmt.Errorf("SCORE_POLICY must be 'threshold' or 'lenient', got %q", cfg.ScorePolicy)
	}
	if cfg.SkillMatchMode != "substring" && cfg.SkillMatchMode != "word" {
		return nil, fmt.Errorf("SKILL_MATCH_MODE must be 'substring' or 'word', got %q", cfg.SkillMatchMode)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
