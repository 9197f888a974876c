package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"WahalaIndex/internal/config"
	"WahalaIndex/internal/ports"
)

// GeminiOracle implements ports.Oracle with Google's Gemini models.
type GeminiOracle struct {
	client       *genai.Client
	model        string
	systemPrompt string
	temperature  float32
}

var _ ports.Oracle = (*GeminiOracle)(nil)

// NewGeminiOracle opens a Gemini client. The system prompt and temperature
// are shared with the chat oracle settings.
func NewGeminiOracle(ctx context.Context, cfg config.GeminiConfig, oracle config.OracleConfig) (*GeminiOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &GeminiOracle{
		client:       client,
		model:        model,
		systemPrompt: safePrompt(oracle.SystemPrompt),
		temperature:  oracle.SamplingTemperature(),
	}, nil
}

// Close releases the underlying client.
func (g *GeminiOracle) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Score asks the model for a reply and concatenates its text parts.
func (g *GeminiOracle) Score(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(g.systemPrompt)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return replyText(resp)
}

func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini reply has no text")
	}
	return b.String(), nil
}
