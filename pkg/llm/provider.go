package llm

import "context"

// Provider is the chat-completion gateway used for post generation and
// audience analysis. Implementations return the assistant message text of
// the first choice.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
