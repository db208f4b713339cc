// Package inference talks to an OpenAI-compatible chat-completions API
// (Groq by default) to turn resume text into a profile draft and to answer
// questions about a stored profile.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go-hr-assistant/internal/domain"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"

	extractionMaxTokens = 800
	chatMaxTokens       = 500
)

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		model:   opts.Model,
		http:    &http.Client{Timeout: opts.Timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// InferProfile asks the model for a strict-JSON profile draft extracted from
// resume text. The returned profile is untrusted: it still has to pass the
// normalizer before it may be persisted.
func (c *Client) InferProfile(ctx context.Context, resumeText string) (*domain.CandidateProfile, error) {
	content, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(extractionPrompt, resumeText)},
		},
		Temperature:    0.0,
		MaxTokens:      extractionMaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var profile domain.CandidateProfile
	if err := json.Unmarshal([]byte(stripFences(content)), &profile); err != nil {
		return nil, newError(KindDecode, err, "JSON parsing error: %v", err)
	}
	return &profile, nil
}

// AnswerQuestion sends the full stored profile plus the question and returns
// the model's free-text reply. The profile-only grounding lives in the system
// prompt; replies are best effort, not ground truth.
func (c *Client) AnswerQuestion(ctx context.Context, question string, profile *domain.CandidateProfile) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", newError(KindDecode, err, "encode profile: %v", err)
	}

	return c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(chatPrompt, profileJSON, question)},
		},
		Temperature: 0.5,
		MaxTokens:   chatMaxTokens,
	})
}

// complete runs one chat-completions round trip and returns
// choices[0].message.content. One attempt only; failures are terminal.
func (c *Client) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	if c.apiKey == "" {
		return "", newError(KindConfig, nil, "API key missing in environment")
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", newError(KindDecode, err, "encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", newError(KindTransport, err, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", newError(KindTransport, err, "%v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(KindTransport, err, "read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newError(KindStatus, nil, "HTTP %d: %s", resp.StatusCode, excerpt(respBody))
	}

	var envelope chatResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", newError(KindDecode, err, "decode response: %v", err)
	}
	if len(envelope.Choices) == 0 {
		return "", newError(KindDecode, nil, "response contained no choices")
	}
	return envelope.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences some models wrap around JSON even
// in json_object mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func excerpt(body []byte) string {
	const max = 300
	s := strings.TrimSpace(string(body))
	if len(s) <= max {
		return s
	}
	// Back off to a rune boundary so the excerpt stays valid UTF-8.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
