package domain

import "context"

// DraftForm is the editable form a user submits to save a draft. Scalars and
// skills arrive as raw text; the controller normalizes everything before the
// profile is persisted.
type DraftForm struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Linkedin   string       `json:"linkedin"`
	Summary    string       `json:"summary"`
	SkillsText string       `json:"skills_text"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// SessionView is what the single-page UI needs to render itself.
type SessionView struct {
	Phase            string            `json:"phase"`
	CurrentCandidate string            `json:"current_candidate,omitempty"`
	Draft            *CandidateProfile `json:"draft,omitempty"`
}

// AssistantUsecase is the session/form controller: it owns the state machine
// over candidate selection and runs every user action to completion before
// accepting the next.
type AssistantUsecase interface {
	ParseResume(ctx context.Context, pdfData []byte) (*CandidateProfile, error)
	SaveDraft(ctx context.Context, form DraftForm) (*CandidateProfile, error)
	CancelDraft(ctx context.Context)
	BeginEdit(ctx context.Context) (*CandidateProfile, error)
	Select(ctx context.Context, name string) (*CandidateProfile, error)
	Current(ctx context.Context) (*CandidateProfile, error)
	ListNames(ctx context.Context) ([]string, error)
	DeleteCurrent(ctx context.Context) error
	Chat(ctx context.Context, message string) (string, error)
	Transcript(ctx context.Context) []ChatTurn
	Session(ctx context.Context) SessionView
}
