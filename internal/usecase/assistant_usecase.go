package usecase

import (
	"context"
	"net/http"
	"sync"

	"go-hr-assistant/internal/domain"
	"go-hr-assistant/internal/normalize"
	"go-hr-assistant/internal/session"
	"go-hr-assistant/pkg/apperror"
	"go-hr-assistant/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type assistantUsecase struct {
	// One user, one action at a time: the mutex serializes every operation,
	// remote calls included.
	mu sync.Mutex

	repo      domain.CandidateRepository
	extractor domain.ResumeExtractor
	inference domain.InferenceService
	state     *session.State
	validate  *validator.Validate
}

func NewAssistantUsecase(
	repo domain.CandidateRepository,
	extractor domain.ResumeExtractor,
	inference domain.InferenceService,
	state *session.State,
	validate *validator.Validate,
) domain.AssistantUsecase {
	return &assistantUsecase{
		repo:      repo,
		extractor: extractor,
		inference: inference,
		state:     state,
		validate:  validate,
	}
}

// ParseResume runs upload -> extract -> infer and enters DraftNew. Any
// failure leaves the session exactly where it was: no draft is created.
func (u *assistantUsecase) ParseResume(ctx context.Context, pdfData []byte) (*domain.CandidateProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	text, err := u.extractor.Text(pdfData)
	if err != nil {
		logger.Log.Warn("resume extraction failed", "error", err)
		return nil, apperror.UnprocessableEntity("File Error: Could not read text from the PDF.")
	}

	draft, err := u.inference.InferProfile(ctx, text)
	if err != nil {
		logger.Log.Warn("profile inference failed", "error", err)
		return nil, apperror.UnprocessableEntity("AI Error: " + err.Error())
	}

	u.state.StartDraft(draft)
	return draft, nil
}

// SaveDraft normalizes the submitted form into a canonical profile, persists
// it (insert for a new candidate, full replace for an edit) and moves the
// session to Viewing.
func (u *assistantUsecase) SaveDraft(ctx context.Context, form domain.DraftForm) (*domain.CandidateProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	draft := u.state.Draft()
	if draft == nil {
		return nil, apperror.Conflict("No draft in progress")
	}

	canonical := &domain.CandidateProfile{
		ID:              draft.ID,
		Name:            normalize.Trim(form.Name),
		Email:           normalize.Trim(form.Email),
		Phone:           normalize.Trim(form.Phone),
		Summary:         normalize.Trim(form.Summary),
		Skills:          normalize.ParseSkillList(form.SkillsText),
		Experience:      normalize.CleanExperience(form.Experience),
		Education:       normalize.CleanEducation(form.Education),
		LinkedinProfile: normalize.Trim(form.Linkedin),
	}

	if err := u.validate.Struct(canonical); err != nil {
		return nil, apperror.BadRequest("Name is required")
	}

	if err := u.repo.Save(ctx, canonical); err != nil {
		logger.Log.Error("save candidate failed", "error", err)
		return nil, apperror.New(http.StatusInternalServerError, "Error saving candidate: "+err.Error(), err)
	}

	u.state.CommitDraft(canonical.Name)
	logger.Log.Info("candidate saved", "name", canonical.Name, "id", canonical.ID)
	return canonical, nil
}

func (u *assistantUsecase) CancelDraft(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.CancelDraft()
}

// BeginEdit seeds a draft from the stored profile of the current candidate,
// ID included, and enters DraftEdit.
func (u *assistantUsecase) BeginEdit(ctx context.Context) (*domain.CandidateProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.Draft() != nil {
		return nil, apperror.Conflict(session.ErrDraftActive.Error())
	}
	current := u.state.Current()
	if current == "" {
		return nil, apperror.BadRequest("No candidate selected")
	}

	profile, err := u.repo.GetByName(ctx, current)
	if err != nil {
		logger.Log.Error("load candidate failed", "name", current, "error", err)
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	if err := u.state.StartEdit(profile); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	return profile, nil
}

func (u *assistantUsecase) Select(ctx context.Context, name string) (*domain.CandidateProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.Draft() != nil {
		return nil, apperror.Conflict(session.ErrDraftActive.Error())
	}

	profile, err := u.repo.GetByName(ctx, name)
	if err != nil {
		logger.Log.Error("load candidate failed", "name", name, "error", err)
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	if err := u.state.Select(name); err != nil {
		return nil, apperror.Conflict(err.Error())
	}
	return profile, nil
}

func (u *assistantUsecase) Current(ctx context.Context) (*domain.CandidateProfile, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.currentLocked(ctx)
}

func (u *assistantUsecase) currentLocked(ctx context.Context) (*domain.CandidateProfile, error) {
	current := u.state.Current()
	if current == "" {
		return nil, apperror.NotFound("No candidate selected")
	}

	profile, err := u.repo.GetByName(ctx, current)
	if err != nil {
		logger.Log.Error("load candidate failed", "name", current, "error", err)
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return profile, nil
}

func (u *assistantUsecase) ListNames(ctx context.Context) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	names, err := u.repo.ListNames(ctx)
	if err != nil {
		logger.Log.Error("list candidates failed", "error", err)
		return nil, apperror.Internal(err)
	}
	return names, nil
}

func (u *assistantUsecase) DeleteCurrent(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	current := u.state.Current()
	if current == "" {
		return apperror.BadRequest("No candidate selected")
	}

	if err := u.repo.DeleteByName(ctx, current); err != nil {
		logger.Log.Error("delete candidate failed", "name", current, "error", err)
		return apperror.New(http.StatusInternalServerError, "Error deleting candidate: "+err.Error(), err)
	}

	u.state.DropCurrent()
	logger.Log.Info("candidate deleted", "name", current)
	return nil
}

// Chat answers a question about the current candidate from their stored
// profile and appends both turns to the transcript. A failed call appends
// nothing.
func (u *assistantUsecase) Chat(ctx context.Context, message string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state.Draft() != nil {
		return "", apperror.Conflict(session.ErrDraftActive.Error())
	}
	message = normalize.Trim(message)
	if message == "" {
		return "", apperror.BadRequest("Message is required")
	}

	profile, err := u.currentLocked(ctx)
	if err != nil {
		return "", err
	}

	reply, err := u.inference.AnswerQuestion(ctx, message, profile)
	if err != nil {
		logger.Log.Warn("chat inference failed", "error", err)
		return "", apperror.UnprocessableEntity("AI Error: " + err.Error())
	}

	u.state.Append(domain.ChatTurn{Role: domain.RoleUser, Content: message})
	u.state.Append(domain.ChatTurn{Role: domain.RoleAssistant, Content: reply})
	return reply, nil
}

func (u *assistantUsecase) Transcript(ctx context.Context) []domain.ChatTurn {
	u.mu.Lock()
	defer u.mu.Unlock()

	turns := u.state.Transcript()
	if turns == nil {
		return []domain.ChatTurn{}
	}
	return turns
}

func (u *assistantUsecase) Session(ctx context.Context) domain.SessionView {
	u.mu.Lock()
	defer u.mu.Unlock()

	return domain.SessionView{
		Phase:            string(u.state.Phase()),
		CurrentCandidate: u.state.Current(),
		Draft:            u.state.Draft(),
	}
}
