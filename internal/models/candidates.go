package models

import (
	"time"
)

// CandidateRecord is one row of the resumes table. Rows are append-only;
// there is no update or delete path.
type CandidateRecord struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Filename   string    `json:"filename" db:"filename"`
	Category   string    `json:"category" db:"category"`
	Score      string    `json:"score" db:"score"`
	Branch     string    `json:"branch" db:"branch"`
	Skills     string    `json:"skills" db:"skills"`
	UploadTime time.Time `json:"upload_time" db:"upload_time"`
}

// UploadedFile is one file part of an upload batch, already read into
// memory by the handler.
type UploadedFile struct {
	Data     []byte
	Filename string
}

// InstituteEntry is one candidate in a categorized institute-filter
// result list.
type InstituteEntry struct {
	Name     string `json:"name"`
	Score    string `json:"score"`
	Filename string `json:"filename"`
}

// InstituteResult groups accepted candidates by institute tier.
type InstituteResult struct {
	IIT   []InstituteEntry `json:"iit"`
	NIT   []InstituteEntry `json:"nit"`
	Other []InstituteEntry `json:"other"`
}

// RoleMatchEntry is one candidate scoring above 0% against the
// resolved required-skill set.
type RoleMatchEntry struct {
	Name            string  `json:"name"`
	MatchedSkills   string  `json:"matched_skills"`
	MatchPercentage float64 `json:"match_percentage"`
	Filename        string  `json:"filename"`
}

// RoleMatchResult wraps the role-match response.
type RoleMatchResult struct {
	JobTitle   string           `json:"job_title"`
	Candidates []RoleMatchEntry `json:"candidates"`
}
