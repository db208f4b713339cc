package session_test

import (
	"testing"

	"go-hr-assistant/internal/domain"
	"go-hr-assistant/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseDerivation(t *testing.T) {
	s := session.New()
	assert.Equal(t, session.PhaseNoCandidate, s.Phase())

	s.StartDraft(&domain.CandidateProfile{Name: "Jane"})
	assert.Equal(t, session.PhaseDraftNew, s.Phase())

	s.CommitDraft("Jane")
	assert.Equal(t, session.PhaseViewing, s.Phase())
	assert.Equal(t, "Jane", s.Current())

	require.NoError(t, s.StartEdit(&domain.CandidateProfile{ID: 1, Name: "Jane"}))
	assert.Equal(t, session.PhaseDraftEdit, s.Phase())
}

func TestStartDraftClearsSelection(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Select("Jane"))

	s.StartDraft(&domain.CandidateProfile{Name: "Bob"})
	assert.Equal(t, session.PhaseDraftNew, s.Phase())
	assert.Equal(t, "", s.Current())
}

func TestStartDraftDiscardsClaimedID(t *testing.T) {
	s := session.New()

	// A parsed draft is untrusted input; a row id in it must not survive.
	s.StartDraft(&domain.CandidateProfile{ID: 42, Name: "Jane"})
	assert.Zero(t, s.Draft().ID)
}

func TestSelectBlockedWhileDraftActive(t *testing.T) {
	s := session.New()
	s.StartDraft(&domain.CandidateProfile{Name: "Jane"})

	err := s.Select("Bob")
	assert.ErrorIs(t, err, session.ErrDraftActive)
	assert.Equal(t, session.PhaseDraftNew, s.Phase())
}

func TestSelectPreservesTranscriptWithinSession(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Select("Jane"))
	s.Append(domain.ChatTurn{Role: domain.RoleUser, Content: "hi"})

	require.NoError(t, s.Select("Bob"))
	assert.Empty(t, s.Transcript())

	require.NoError(t, s.Select("Jane"))
	require.Len(t, s.Transcript(), 1)
	assert.Equal(t, "hi", s.Transcript()[0].Content)
}

func TestCommitDraftNewCandidateGetsEmptyTranscript(t *testing.T) {
	s := session.New()
	s.StartDraft(&domain.CandidateProfile{Name: "Jane"})

	s.CommitDraft("Jane")
	assert.NotNil(t, s.Transcript())
	assert.Empty(t, s.Transcript())
	assert.Nil(t, s.Draft())
}

func TestRenameMovesTranscript(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Select("Jane"))
	s.Append(domain.ChatTurn{Role: domain.RoleUser, Content: "hello"})

	require.NoError(t, s.StartEdit(&domain.CandidateProfile{ID: 1, Name: "Jane"}))
	s.CommitDraft("Jane Smith")

	assert.Equal(t, "Jane Smith", s.Current())
	require.Len(t, s.Transcript(), 1)
	assert.Equal(t, "hello", s.Transcript()[0].Content)

	// The old key is gone: re-selecting Jane starts fresh.
	require.NoError(t, s.Select("Jane"))
	assert.Empty(t, s.Transcript())
}

func TestCancelEditKeepsCurrentAndTranscript(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Select("Jane"))
	s.Append(domain.ChatTurn{Role: domain.RoleAssistant, Content: "reply"})

	require.NoError(t, s.StartEdit(&domain.CandidateProfile{ID: 1, Name: "Jane"}))
	s.CancelDraft()

	assert.Equal(t, session.PhaseViewing, s.Phase())
	assert.Equal(t, "Jane", s.Current())
	assert.Len(t, s.Transcript(), 1)
}

func TestCancelNewDraftReturnsToNoCandidate(t *testing.T) {
	s := session.New()
	s.StartDraft(&domain.CandidateProfile{Name: "Jane"})

	s.CancelDraft()
	assert.Equal(t, session.PhaseNoCandidate, s.Phase())
}

func TestDropCurrentDiscardsTranscript(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Select("Jane"))
	s.Append(domain.ChatTurn{Role: domain.RoleUser, Content: "hi"})

	s.DropCurrent()
	assert.Equal(t, session.PhaseNoCandidate, s.Phase())

	require.NoError(t, s.Select("Jane"))
	assert.Empty(t, s.Transcript())
}

func TestStartEditRequiresSelection(t *testing.T) {
	s := session.New()
	assert.Error(t, s.StartEdit(&domain.CandidateProfile{ID: 1, Name: "Jane"}))
}
