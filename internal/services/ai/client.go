package ai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tasheela99/chat-bot/internal/config"
	"github.com/Tasheela99/chat-bot/internal/models"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Service is the outbound completion provider consumed by the pipeline.
type Service interface {
	Complete(ctx context.Context, systemPrompt, contextInfo string, history []models.Message, question string) (string, error)
}

// Client talks to an OpenAI-compatible chat completion endpoint (Groq in
// production). It is constructed once at startup and injected wherever a
// completion is needed.
type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      *logrus.Logger
}

// NewClient creates a completion client from config.
func NewClient(cfg *config.LLMConfig, logger *logrus.Logger) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	logger.WithFields(logrus.Fields{
		"model":    cfg.Model,
		"base_url": cfg.BaseURL,
	}).Info("LLM client initialized")

	return &Client{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Complete sends one chat completion request: a single system message built
// from the topic's prompt and background text, the caller-supplied history
// in original order, then the question. A provider failure is terminal for
// the request; there is no retry or backoff.
func (c *Client) Complete(ctx context.Context, systemPrompt, contextInfo string, history []models.Message, question string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf("%s\n\nContext Information:\n%s", systemPrompt, contextInfo),
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		TopP:        1,
	})
	if err != nil {
		c.logger.WithError(err).WithField("model", c.model).Error("Completion request failed")
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no completion returned from provider")
	}

	return resp.Choices[0].Message.Content, nil
}
