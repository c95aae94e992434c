package assistant

import (
	"context"
	"strings"
	"time"

	"medlink/pkg/errors"
)

// simulated answers from a small keyword table after a fixed delay, so the
// rest of the system can be exercised without a model provider configured.
type simulated struct {
	delay time.Duration
}

// NewSimulated returns a Gateway that pattern-matches the latest user turn
// against canned clinical replies. delay mimics provider latency.
func NewSimulated(delay time.Duration) Gateway {
	return &simulated{delay: delay}
}

type cannedReply struct {
	keywords []string
	reply    string
}

var cannedReplies = []cannedReply{
	{
		keywords: []string{"hello", "hi ", "hey"},
		reply:    "Hello, doctor. I'm here whenever you need to talk something through, clinical or otherwise.",
	},
	{
		keywords: []string{"tired", "exhaust", "burnout", "burn out"},
		reply:    "Long shifts take a real toll. Even ten minutes of genuine rest between rounds helps more than it feels like it should. Is the fatigue recent, or has it been building for a while?",
	},
	{
		keywords: []string{"sleep", "insomnia"},
		reply:    "Disrupted sleep is almost universal in rotating shifts. Keeping the pre-sleep hour free of charts and screens is the single change colleagues report helping most. How many hours are you managing on call weeks?",
	},
	{
		keywords: []string{"patient", "case", "diagnos"},
		reply:    "That sounds like a demanding case. Talking it through with a colleague, even informally, often surfaces an angle the chart alone doesn't. What part of it is weighing on you?",
	},
	{
		keywords: []string{"stress", "anxi", "overwhelm"},
		reply:    "Feeling stretched thin is nothing to push through silently. Many hospitals have peer support lines precisely for this. Would it help to break down what's on your plate right now?",
	},
	{
		keywords: []string{"thank"},
		reply:    "Any time. Take care of yourself the way you take care of your patients.",
	},
}

const defaultReply = "I hear you. Tell me a bit more about what's on your mind, and we can work through it together."

func (s *simulated) Reply(ctx context.Context, history []Turn) (string, error) {
	if len(history) == 0 {
		return "", errors.InvalidArg("conversation history is empty")
	}
	if err := s.wait(ctx); err != nil {
		return "", err
	}

	last := lastUserTurn(history)
	lower := strings.ToLower(last)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.reply, nil
			}
		}
	}
	return defaultReply, nil
}

func (s *simulated) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", errors.InvalidArg("audio payload is empty")
	}
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	return "I've been feeling worn down after the last few night shifts.", nil
}

func (s *simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func lastUserTurn(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return history[len(history)-1].Content
}
