package handler

import (
	"encoding/json"
	"net/http"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"
)

// ConversationHandler is the request boundary for the conversation pipeline.
type ConversationHandler struct {
	service domain.ConversationService
	config  domain.Config
	logger  domain.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(service domain.ConversationService, config domain.Config, logger domain.Logger) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		config:  config,
		logger:  logger,
	}
}

// Info handles GET /conversation/ with static API metadata
func (h *ConversationHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "PDF Chat API - Conversation API",
		"version": "v1",
		"endpoints": map[string]string{
			"POST /conversation/": "Process conversation",
			"POST /options/":      "Get available options",
		},
	})
}

// Process handles POST /conversation/. The request is validated before any
// network I/O happens; only then is the matching operation dispatched.
func (h *ConversationHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req domain.ConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid conversation request body", "error", err)
		writeAppError(w, apperrors.NewValidationError("Invalid request body"), h.config.IsDebug())
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid conversation request", "action", req.Action, "error", err)
		writeAppError(w, err, h.config.IsDebug())
		return
	}

	var (
		resp *domain.ConversationResponse
		err  error
	)
	switch domain.ActionType(req.Action) {
	case domain.ActionQuestionAnswer:
		resp, err = h.service.AnswerQuestion(r.Context(), req)
	case domain.ActionSummarizer:
		resp, err = h.service.SummarizeDocument(r.Context(), req)
	case domain.ActionGenerateQuestions:
		resp, err = h.service.GenerateQuestions(r.Context(), req)
	default:
		// Unreachable after Validate, kept so a new action cannot slip
		// through silently.
		writeAppError(w, apperrors.NewValidationError("Invalid action type"), h.config.IsDebug())
		return
	}

	if err != nil {
		h.logger.Error("Conversation request failed", err, "action", req.Action, "document_url", req.DocumentURL)
		writeAppError(w, err, h.config.IsDebug())
		return
	}

	h.logger.Info("Conversation request processed", "action", req.Action)
	writeJSON(w, http.StatusOK, resp)
}
