package service

import (
	"context"
	"strings"
	"time"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"
)

// Per-action success messages surfaced in the response envelope.
var successMessages = map[domain.ActionType]string{
	domain.ActionQuestionAnswer:    "Question answered successfully",
	domain.ActionSummarizer:        "Document summarized successfully",
	domain.ActionGenerateQuestions: "Questions generated successfully",
}

// ConversationService orchestrates the conversation pipeline: fetch the
// document, extract text, build the action's prompt, invoke the agent. The
// three operations share one parameterized run; everything action-specific
// lives in the PromptBuilder.
type ConversationService struct {
	pdfService *PDFService
	agent      domain.AgentClient
	prompts    *PromptBuilder
	logRepo    domain.ProcessingLogRepository
	logger     domain.Logger
}

// NewConversationService creates a new conversation service instance
func NewConversationService(
	pdfService *PDFService,
	agent domain.AgentClient,
	logRepo domain.ProcessingLogRepository,
	config domain.Config,
	logger domain.Logger,
) *ConversationService {
	return &ConversationService{
		pdfService: pdfService,
		agent:      agent,
		prompts:    NewPromptBuilder(config),
		logRepo:    logRepo,
		logger:     logger,
	}
}

// AnswerQuestion answers a question from the document's content only.
func (s *ConversationService) AnswerQuestion(ctx context.Context, req domain.ConversationRequest) (*domain.ConversationResponse, error) {
	return s.run(ctx, domain.ActionQuestionAnswer, req)
}

// SummarizeDocument produces a structured summary of the document.
func (s *ConversationService) SummarizeDocument(ctx context.Context, req domain.ConversationRequest) (*domain.ConversationResponse, error) {
	return s.run(ctx, domain.ActionSummarizer, req)
}

// GenerateQuestions produces comprehension questions from the document.
func (s *ConversationService) GenerateQuestions(ctx context.Context, req domain.ConversationRequest) (*domain.ConversationResponse, error) {
	return s.run(ctx, domain.ActionGenerateQuestions, req)
}

// run is the shared pipeline behind all three operations.
func (s *ConversationService) run(ctx context.Context, action domain.ActionType, req domain.ConversationRequest) (*domain.ConversationResponse, error) {
	start := time.Now()

	s.logger.Info("Processing conversation request",
		"action", string(action),
		"document_url", req.DocumentURL,
	)

	result, err := s.execute(ctx, action, req)
	s.recordOutcome(ctx, action, req.DocumentURL, start, err)
	if err != nil {
		return nil, err
	}

	return domain.NewSuccessResponse(result, successMessages[action]), nil
}

func (s *ConversationService) execute(ctx context.Context, action domain.ActionType, req domain.ConversationRequest) (string, error) {
	if action == domain.ActionQuestionAnswer && strings.TrimSpace(req.Question) == "" {
		return "", apperrors.NewValidationError("Question is required for question_answer action")
	}

	doc, err := s.pdfService.ProcessPDF(ctx, req.DocumentURL, req.MinPage, req.MaxPage)
	if err != nil {
		return "", err
	}

	agentConfig, prompt, err := s.prompts.Build(action, doc, req.Question)
	if err != nil {
		return "", err
	}

	response, err := s.agent.Run(ctx, agentConfig, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(response) == "" {
		return "", apperrors.NewAgentProcessingError("Empty response from agent", agentConfig.Name, nil)
	}

	return response, nil
}

// recordOutcome persists a best-effort processing log when a repository is
// configured.
func (s *ConversationService) recordOutcome(ctx context.Context, action domain.ActionType, documentURL string, start time.Time, runErr error) {
	if s.logRepo == nil {
		return
	}

	entry := &domain.ProcessingLog{
		ActionType:  string(action),
		DocumentURL: documentURL,
		Status:      domain.ProcessingStatusSuccess,
		DurationMS:  time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		entry.Status = domain.ProcessingStatusFailed
		entry.ErrorMessage = runErr.Error()
		if appErr, ok := apperrors.As(runErr); ok {
			entry.ErrorCode = string(appErr.Code)
		}
	}

	if err := s.logRepo.Record(ctx, entry); err != nil {
		s.logger.Warn("Failed to record processing log", "action", string(action), "error", err)
	}
}
