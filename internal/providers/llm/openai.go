package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient targets the Chat Completions API of OpenAI or any compatible
// gateway (OpenRouter, local servers) when BaseURL is set.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if base := strings.TrimRight(strings.TrimSpace(baseURL), "/"); base != "" {
		config.BaseURL = base
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(config), model: model}
}

func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// Model returns the model identifier requests are sent to.
func (c *OpenAIClient) Model() string { return c.model }
