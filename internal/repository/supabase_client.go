package repository

import (
	"fmt"

	"pdf-chat-api/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient wraps the Supabase connection used for processing logs.
type SupabaseClient struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewSupabaseClient creates a new Supabase client instance
func NewSupabaseClient(config domain.Config, logger domain.Logger) *SupabaseClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// Initialize establishes a connection to Supabase
func (s *SupabaseClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

// GetClient returns the underlying Supabase client
func (s *SupabaseClient) GetClient() *supabase.Client {
	return s.client
}
