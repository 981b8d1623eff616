package llm

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient talks to the Gemini API through the official SDK. The
// underlying client is created once and shared by all requests.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: c, model: c.GenerativeModel(model), name: model}, nil
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	txt, ok := responseText(resp)
	if !ok {
		return "", ErrEmptyResponse
	}
	return txt, nil
}

// Model returns the model identifier requests are sent to.
func (g *GeminiClient) Model() string { return g.name }

func (g *GeminiClient) Close() error { return g.client.Close() }

// responseText joins the text parts of the first candidate that has content.
func responseText(r *genai.GenerateContentResponse) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, c := range r.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		found := false
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
				found = true
			}
		}
		if found {
			return sb.String(), true
		}
	}
	return "", false
}
