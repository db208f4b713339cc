package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"go-hr-assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{APIKey: "test-key", BaseURL: srv.URL})
}

func completionReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestInferProfile(t *testing.T) {
	profileJSON := `{"name":"Jane Doe","email":"jane@example.com","skills":["Go","SQL"],
		"experience":[{"company":"Acme","title":"Engineer","duration":"2020","description":"APIs"}],
		"education":[{"degree":"BSc","institution":"MIT","year":"2019"}],
		"linkedin_profile":"linkedin.com/in/janedoe"}`

	var gotReq chatRequest
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, completionReply(profileJSON))
	})

	profile, err := client.InferProfile(context.Background(), "some resume text")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Go", "SQL"}, profile.Skills)
	assert.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)

	// Extraction forces a JSON-object reply at temperature zero.
	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
	assert.Zero(t, gotReq.Temperature)
	assert.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "some resume text")
}

func TestInferProfileStripsFences(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionReply("```json\n{\"name\":\"Jane\"}\n```"))
	})

	profile, err := client.InferProfile(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
}

func TestMissingAPIKeyIsConfigError(t *testing.T) {
	client := NewClient(Options{})

	_, err := client.InferProfile(context.Background(), "text")
	require.Error(t, err)

	var infErr *Error
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, KindConfig, infErr.Kind)
	assert.Contains(t, infErr.Message, "API key missing")
}

func TestNon2xxIsStatusError(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.AnswerQuestion(context.Background(), "q", &domain.CandidateProfile{Name: "Jane"})
	var infErr *Error
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, KindStatus, infErr.Kind)
	assert.Contains(t, infErr.Message, "HTTP 429")
}

func TestStatusErrorExcerptStaysValidUTF8(t *testing.T) {
	// Body longer than the excerpt limit, built so the cut lands inside a
	// multi-byte rune unless trimming respects boundaries.
	body := "a" + strings.Repeat("é", 200)
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, body, http.StatusBadGateway)
	})

	_, err := client.AnswerQuestion(context.Background(), "q", &domain.CandidateProfile{Name: "Jane"})
	var infErr *Error
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, KindStatus, infErr.Kind)
	assert.True(t, utf8.ValidString(infErr.Message), "error message must be valid UTF-8")
}

func TestUndecodableProfileIsDecodeError(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionReply("not json at all"))
	})

	_, err := client.InferProfile(context.Background(), "text")
	var infErr *Error
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, KindDecode, infErr.Kind)
}

func TestBadEnvelopeIsDecodeError(t *testing.T) {
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	_, err := client.AnswerQuestion(context.Background(), "q", &domain.CandidateProfile{Name: "Jane"})
	var infErr *Error
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, KindDecode, infErr.Kind)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := NewClient(Options{APIKey: "k", BaseURL: srv.URL})
	_, err := client.AnswerQuestion(context.Background(), "q", &domain.CandidateProfile{Name: "Jane"})

	var infErr *Error
	require.True(t, errors.As(err, &infErr))
	assert.Equal(t, KindTransport, infErr.Kind)
}

func TestAnswerQuestionCarriesProfile(t *testing.T) {
	var gotReq chatRequest
	client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, completionReply("She has five years of Go experience."))
	})

	reply, err := client.AnswerQuestion(context.Background(), "How much Go experience?", &domain.CandidateProfile{
		Name:   "Jane Doe",
		Skills: []string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "She has five years of Go experience.", reply)

	assert.Nil(t, gotReq.ResponseFormat)
	assert.Equal(t, 0.5, gotReq.Temperature)
	assert.Contains(t, gotReq.Messages[1].Content, "Jane Doe")
	assert.Contains(t, gotReq.Messages[1].Content, "How much Go experience?")
}
