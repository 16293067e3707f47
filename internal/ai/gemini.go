package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// ErrMissingAPIKey is returned by every call when no Gemini key was configured.
var ErrMissingAPIKey = errors.New("gemini: missing api key")

// GeminiProvider implements ItineraryGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// An empty apiKey yields a provider whose calls fail with ErrMissingAPIKey, so the
// process can still start and report the problem inline. A nil temperature keeps
// the model's own default.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, temperature *float32) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return &GeminiProvider{}, nil
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	configureModel(model, temperature)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// configureModel applies optional generation settings.
// Itineraries are free-form markdown tables; the default text response type is kept.
func configureModel(model *genai.GenerativeModel, temperature *float32) {
	if temperature != nil {
		model.SetTemperature(*temperature)
	}
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

// GenerateItinerary asks Gemini for a day-by-day plan. No retries.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if p.model == nil {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("gemini: empty prompt")
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return responseText(resp)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.Join(textParts, "\n"), nil
}
