package assistant

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"medlink/internal/config"
	"medlink/pkg/errors"
)

// Service ties the gateway to conversation persistence. Each user owns
// one conversation log, keyed by their user id.
type Service interface {
	Converse(ctx context.Context, userID, message string) (string, error)
	History(ctx context.Context, userID string) ([]Turn, error)
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type service struct {
	gw     Gateway
	store  ConversationStore
	logger *zap.Logger
}

func NewService(gw Gateway, store ConversationStore, logger *zap.Logger) Service {
	return &service{gw: gw, store: store, logger: logger}
}

// NewGateway picks the gateway implementation from configuration. Anything
// other than an explicit genai provider gets the simulated one.
func NewGateway(cfg config.AssistantConfig) (Gateway, error) {
	if cfg.Provider == "genai" {
		return NewGenAI(cfg.APIKey, cfg.Model)
	}
	return NewSimulated(800 * time.Millisecond), nil
}

func (s *service) Converse(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.InvalidArg("message cannot be empty")
	}

	history, err := s.store.Load(ctx, userID)
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, "failed to load conversation", err)
	}

	history = append(history, Turn{Role: RoleUser, Content: message})
	reply, err := s.gw.Reply(ctx, history)
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, "assistant is unavailable", err)
	}
	history = append(history, Turn{Role: RoleAssistant, Content: reply})

	// The reply already reached the caller's hands; losing the log entry
	// is not worth failing the exchange over.
	if err := s.store.Save(ctx, userID, history); err != nil {
		s.logger.Warn("failed to persist conversation",
			zap.String("user_id", userID), zap.Error(err))
	}
	return reply, nil
}

func (s *service) History(ctx context.Context, userID string) ([]Turn, error) {
	turns, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to load conversation", err)
	}
	return turns, nil
}

func (s *service) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", errors.InvalidArg("audio payload is empty")
	}
	text, err := s.gw.Transcribe(ctx, audio)
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, "transcription is unavailable", err)
	}
	return text, nil
}
