package commenter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Model is one configured generative model bound to a credential.
type Model interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (string, error)
	Close() error
}

// ModelFactory builds a Model for the credential resolved for a request.
type ModelFactory interface {
	NewModel(ctx context.Context, apiKey string) (Model, error)
}

type GeminiFactory struct {
	modelName string
}

func NewGeminiFactory(modelName string) *GeminiFactory {
	return &GeminiFactory{modelName: modelName}
}

func (f *GeminiFactory) NewModel(ctx context.Context, apiKey string) (Model, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(f.modelName)
	model.SetTemperature(0.9)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(2048)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func (g *GeminiClient) GenerateContent(ctx context.Context, parts ...genai.Part) (string, error) {
	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text in generated content")
	}
	return b.String(), nil
}
