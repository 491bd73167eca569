package service

import (
	"context"
	"errors"
	"strings"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"

	openai "github.com/sashabaranov/go-openai"
)

// GroqAgentClient invokes chat models on Groq's OpenAI-compatible endpoint.
type GroqAgentClient struct {
	config domain.Config
	logger domain.Logger
	client *openai.Client
}

// NewGroqAgentClient creates a new agent client
func NewGroqAgentClient(config domain.Config, logger domain.Logger) *GroqAgentClient {
	var client *openai.Client
	if config.GetGroqAPIKey() != "" {
		clientConfig := openai.DefaultConfig(config.GetGroqAPIKey())
		clientConfig.BaseURL = config.GetGroqBaseURL()
		client = openai.NewClientWithConfig(clientConfig)
	}

	return &GroqAgentClient{
		config: config,
		logger: logger,
		client: client,
	}
}

// Run sends one prompt to the provider under the agent's configuration and
// returns the stripped response text. The call is bounded by the configured
// agent timeout.
func (c *GroqAgentClient) Run(ctx context.Context, agent domain.AgentConfig, prompt string) (string, error) {
	if c.client == nil {
		return "", apperrors.NewAgentInitError("Agent client is not configured: missing API key", nil)
	}

	modelID := agent.ModelID
	if modelID == "" {
		modelID = c.config.GetGroqModelID()
	}

	c.logger.Info("Running agent", "agent", agent.Name, "model", modelID)

	runCtx, cancel := context.WithTimeout(ctx, c.config.GetAgentTimeout())
	defer cancel()

	resp, err := c.client.CreateChatCompletion(runCtx, openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemMessage(agent),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", c.mapProviderError(agent, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewAgentProcessingError("Empty response from agent", agent.Name, nil)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", apperrors.NewAgentProcessingError("Empty response from agent", agent.Name, nil)
	}

	c.logger.Info("Agent processing completed", "agent", agent.Name)
	return content, nil
}

// systemMessage flattens the agent configuration into one system prompt.
func systemMessage(agent domain.AgentConfig) string {
	var parts []string
	if agent.Description != "" {
		parts = append(parts, agent.Description)
	}
	if agent.Role != "" {
		parts = append(parts, "Role: "+agent.Role)
	}
	for _, instruction := range agent.Instructions {
		parts = append(parts, "- "+instruction)
	}
	if agent.Markdown {
		parts = append(parts, "- Format the response using Markdown.")
	}
	return strings.Join(parts, "\n")
}

// mapProviderError turns a provider failure into a typed application error.
// A structured API error is preferred; the substring heuristic over the error
// message is a best-effort fallback only.
func (c *GroqAgentClient) mapProviderError(agent domain.AgentConfig, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 {
			c.logger.Error("Provider rate limit exceeded", err, "agent", agent.Name)
			return apperrors.NewRateLimitError("API rate limit exceeded", err)
		}
		c.logger.Error("Provider API error", err, "agent", agent.Name, "status", apiErr.HTTPStatusCode)
		return apperrors.NewProviderAPIError("Provider API error: "+apiErr.Message, err)
	}

	if isTimeoutError(err) {
		c.logger.Error("Agent invocation timed out", err, "agent", agent.Name)
		return apperrors.NewTimeoutError("Agent invocation timed out", err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api") || strings.Contains(msg, "groq") || strings.Contains(msg, "rate") {
		c.logger.Error("Provider API error", err, "agent", agent.Name)
		return apperrors.NewProviderAPIError("Provider API error: "+err.Error(), err)
	}

	c.logger.Error("Agent processing error", err, "agent", agent.Name)
	return apperrors.NewAgentProcessingError("Agent processing failed: "+err.Error(), agent.Name, err)
}
