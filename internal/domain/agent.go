package domain

import "context"

// AgentConfig describes one remote LLM invocation context. A fresh value is
// built per request; nothing is cached between requests.
type AgentConfig struct {
	Name         string
	Description  string
	Role         string
	Instructions []string
	ModelID      string
	Markdown     bool
}

// AgentClient wraps the outbound call to the LLM provider.
type AgentClient interface {
	// Run sends the prompt to the provider and returns the stripped
	// response text, or a typed error describing the failure.
	Run(ctx context.Context, agent AgentConfig, prompt string) (string, error)
}
