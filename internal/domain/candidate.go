package domain

import (
	"context"
	"strings"
)

// Experience is one work-history row on a candidate profile.
type Experience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education row on a candidate profile.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// CandidateProfile is the canonical profile shape. A profile coming out of the
// inference service is a draft: possibly partial and not yet normalized. It
// becomes canonical after passing through the normalize package on save.
type CandidateProfile struct {
	ID              int64        `json:"id,omitempty"`
	Name            string       `json:"name" validate:"required"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Summary         string       `json:"summary"`
	Skills          []string     `json:"skills"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
	LinkedinProfile string       `json:"linkedin_profile"`
}

// LinkedinURL returns the linkedin profile with a scheme so the UI can render
// it as a link. Empty stays empty.
func (p *CandidateProfile) LinkedinURL() string {
	if p.LinkedinProfile == "" {
		return ""
	}
	if strings.HasPrefix(p.LinkedinProfile, "http") {
		return p.LinkedinProfile
	}
	return "https://" + p.LinkedinProfile
}

type CandidateRepository interface {
	Init(ctx context.Context) error
	// Save inserts when profile.ID is zero (assigning the new ID back onto the
	// profile) and otherwise overwrites every column of the existing row.
	Save(ctx context.Context, profile *CandidateProfile) error
	ListNames(ctx context.Context) ([]string, error)
	// GetByName returns (nil, nil) when no row matches.
	GetByName(ctx context.Context, name string) (*CandidateProfile, error)
	DeleteByName(ctx context.Context, name string) error
	DeleteByID(ctx context.Context, id int64) error
}

// ResumeExtractor turns an uploaded resume file into plain text. An empty
// extraction is an error: the caller must not distinguish "no text layer"
// from a broken file.
type ResumeExtractor interface {
	Text(data []byte) (string, error)
}

// InferenceService is the remote LLM boundary.
type InferenceService interface {
	InferProfile(ctx context.Context, resumeText string) (*CandidateProfile, error)
	AnswerQuestion(ctx context.Context, question string, profile *CandidateProfile) (string, error)
}
