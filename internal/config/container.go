package config

import (
	"pdf-chat-api/internal/domain"
	"pdf-chat-api/internal/repository"
	"pdf-chat-api/internal/service"
	"pdf-chat-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config              domain.Config
	Logger              domain.Logger
	PDFFetcher          domain.PDFFetcher
	TextExtractor       domain.TextExtractor
	AgentClient         domain.AgentClient
	ProcessingLogRepo   domain.ProcessingLogRepository
	ConversationService domain.ConversationService
}

// NewContainer creates a new dependency injection container. It fails when
// required configuration is missing so a misconfigured server never starts.
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())

	fetcher := service.NewPDFFetcher(cfg, appLogger)
	extractor := service.NewTextExtractor(cfg, appLogger)
	pdfService := service.NewPDFService(fetcher, extractor, appLogger)
	agentClient := service.NewGroqAgentClient(cfg, appLogger)

	// Processing logs are optional: enabled only when Supabase is configured.
	var logRepo domain.ProcessingLogRepository
	if cfg.GetSupabaseURL() != "" && cfg.GetSupabaseKey() != "" {
		supabaseClient := repository.NewSupabaseClient(cfg, appLogger)
		if err := supabaseClient.Initialize(); err != nil {
			appLogger.Warn("Supabase client initialization failed; processing logs disabled", "error", err)
		} else {
			logRepo = repository.NewSupabaseProcessingLogRepository(supabaseClient, appLogger)
		}
	}

	conversationService := service.NewConversationService(
		pdfService,
		agentClient,
		logRepo,
		cfg,
		appLogger,
	)

	return &Container{
		Config:              cfg,
		Logger:              appLogger,
		PDFFetcher:          fetcher,
		TextExtractor:       extractor,
		AgentClient:         agentClient,
		ProcessingLogRepo:   logRepo,
		ConversationService: conversationService,
	}, nil
}
