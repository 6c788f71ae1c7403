package usecase

import (
	"context"
	"strings"

	"github.com/taskmd/taskmd/internal/domain"
)

// SendPromptInput contains the raw prompt text.
type SendPromptInput struct {
	Text string
}

// SendPrompt is the use case for raw prompt passthrough.
type SendPrompt struct {
	assistant domain.Assistant
}

// NewSendPrompt creates a new SendPrompt use case.
func NewSendPrompt(assistant domain.Assistant) *SendPrompt {
	return &SendPrompt{assistant: assistant}
}

// Execute passes the text to the assistant interactively.
func (uc *SendPrompt) Execute(ctx context.Context, in SendPromptInput) error {
	if strings.TrimSpace(in.Text) == "" {
		return domain.ErrEmptyPrompt
	}
	return uc.assistant.SendPrompt(ctx, in.Text)
}
