package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a candidate's in-memory transcript. Transcripts
// are never persisted; they live for the session only.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
