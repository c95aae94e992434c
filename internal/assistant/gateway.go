package assistant

import "context"

// Roles for conversation turns. The provider boundary is an ordered list
// of role-tagged messages in, plain text out.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message of an assistant conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Gateway is the pluggable assistant boundary. Implementations may be
// simulated or backed by a real model provider; callers see the same
// request/response contract either way.
type Gateway interface {
	Reply(ctx context.Context, history []Turn) (string, error)
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
