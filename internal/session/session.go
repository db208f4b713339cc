// Package session holds the single user's in-memory state: which candidate is
// selected, the draft being edited, and the per-candidate chat transcripts.
package session

import (
	"errors"

	"go-hr-assistant/internal/domain"
)

// Phase is the candidate-selection state.
type Phase string

const (
	PhaseNoCandidate Phase = "no_candidate"
	PhaseDraftNew    Phase = "draft_new"
	PhaseDraftEdit   Phase = "draft_edit"
	PhaseViewing     Phase = "viewing"
)

// ErrDraftActive blocks candidate switching while a draft is unsaved.
var ErrDraftActive = errors.New("finish adding or editing the current candidate before switching")

// State is not safe for concurrent use; the controller serializes every user
// action end to end, including the remote calls in between.
type State struct {
	current     string
	draft       *domain.CandidateProfile
	transcripts map[string][]domain.ChatTurn
}

func New() *State {
	return &State{transcripts: make(map[string][]domain.ChatTurn)}
}

// Phase derives the state from (current, draft).
func (s *State) Phase() Phase {
	switch {
	case s.draft != nil && s.current == "":
		return PhaseDraftNew
	case s.draft != nil:
		return PhaseDraftEdit
	case s.current != "":
		return PhaseViewing
	default:
		return PhaseNoCandidate
	}
}

func (s *State) Current() string {
	return s.current
}

func (s *State) Draft() *domain.CandidateProfile {
	return s.draft
}

// StartDraft enters DraftNew with a freshly parsed profile. Any current
// selection is cleared: the draft is a new candidate, so any row id the
// untrusted model reply may have claimed is discarded. Only the store
// assigns ids.
func (s *State) StartDraft(draft *domain.CandidateProfile) {
	draft.ID = 0
	s.draft = draft
	s.current = ""
}

// StartEdit enters DraftEdit, seeding the draft from the stored profile of
// the current candidate (ID included).
func (s *State) StartEdit(draft *domain.CandidateProfile) error {
	if s.current == "" {
		return errors.New("no candidate selected")
	}
	s.draft = draft
	return nil
}

// CancelDraft discards the draft. From DraftEdit the current candidate and
// its transcript are untouched; from DraftNew the session returns to
// NoCandidate.
func (s *State) CancelDraft() {
	s.draft = nil
}

// CommitDraft records a successful save under savedName. A new candidate gets
// a fresh empty transcript; on rename the transcript moves from the old name
// to the new one.
func (s *State) CommitDraft(savedName string) {
	if s.current == "" {
		// DraftNew: the saved candidate becomes current with an empty chat.
		s.transcripts[savedName] = []domain.ChatTurn{}
	} else if s.current != savedName {
		if turns, ok := s.transcripts[s.current]; ok {
			s.transcripts[savedName] = turns
			delete(s.transcripts, s.current)
		} else {
			s.transcripts[savedName] = []domain.ChatTurn{}
		}
	}
	s.current = savedName
	s.draft = nil
}

// Select switches the view to an existing candidate. Blocked entirely while a
// draft is active. A first-time selection gets an empty transcript; selecting
// a candidate chatted with earlier in the session keeps the history.
func (s *State) Select(name string) error {
	if s.draft != nil {
		return ErrDraftActive
	}
	if _, ok := s.transcripts[name]; !ok {
		s.transcripts[name] = []domain.ChatTurn{}
	}
	s.current = name
	return nil
}

// DropCurrent leaves Viewing after a delete, discarding the transcript.
func (s *State) DropCurrent() {
	delete(s.transcripts, s.current)
	s.current = ""
}

// Transcript returns the current candidate's chat turns.
func (s *State) Transcript() []domain.ChatTurn {
	if s.current == "" {
		return nil
	}
	return s.transcripts[s.current]
}

// Append adds a turn to the current candidate's transcript.
func (s *State) Append(turn domain.ChatTurn) {
	if s.current == "" {
		return
	}
	s.transcripts[s.current] = append(s.transcripts[s.current], turn)
}
