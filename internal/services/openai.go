package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/config"
)

// ChatClient is the single seam to the model endpoint. The extraction and
// scoring call sites differ only in prompt content and temperature.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error)
}

type openAIChatClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewChatClient(cfg config.OpenAIConfig) ChatClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &openAIChatClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Complete implements ChatClient. Every call is bounded by the configured
// timeout; a timeout surfaces as a RemoteServiceError like any other
// remote failure.
func (c *openAIChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &apperrors.RemoteServiceError{StatusCode: apiErr.HTTPStatusCode, Err: err}
		}
		return "", &apperrors.RemoteServiceError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &apperrors.RemoteServiceError{Err: fmt.Errorf("response contained no choices")}
	}

	return resp.Choices[0].Message.Content, nil
}
