package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const systemPrompt = "You are a supportive companion for medical professionals. " +
	"Reply with short, warm, practical messages. You are not giving medical advice " +
	"to patients; you are talking peer-to-peer with a clinician."

// genaiGateway backs the assistant boundary with Google's Gemini API.
type genaiGateway struct {
	client *genai.Client
	model  string
}

// NewGenAI creates a Gateway backed by the Gemini API. The API key comes
// from configuration; model falls back to a flash variant when empty.
func NewGenAI(apiKey, model string) (Gateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &genaiGateway{client: client, model: model}, nil
}

// genaiRole maps a conversation role onto the wire role the Gemini API
// expects. Anything that is not the assistant speaks as the user.
func genaiRole(r string) genai.Role {
	if r == RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

func (g *genaiGateway) Reply(ctx context.Context, history []Turn) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("conversation history is empty")
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		contents = append(contents, genai.NewContentFromText(t.Content, genaiRole(t.Role)))
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("no text returned")
	}
	return text, nil
}

func (g *genaiGateway) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Transcribe this audio recording verbatim."),
			genai.NewPartFromBytes(audio, "audio/webm"),
		}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("genai transcription failed: %w", err)
	}
	return strings.TrimSpace(result.Text()), nil
}
