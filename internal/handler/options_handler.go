package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"
)

// OptionsHandler serves the static action menu. It never touches the
// conversation pipeline.
type OptionsHandler struct {
	config domain.Config
	logger domain.Logger
}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler(config domain.Config, logger domain.Logger) *OptionsHandler {
	return &OptionsHandler{
		config: config,
		logger: logger,
	}
}

// Options handles POST /options/. An absent startedChatbot flag counts as a
// started session and yields the full menu; only an explicit false returns
// the upload prompt.
func (h *OptionsHandler) Options(w http.ResponseWriter, r *http.Request) {
	var req domain.OptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Invalid options request body", "error", err)
		writeAppError(w, apperrors.NewValidationError("Invalid request body"), h.config.IsDebug())
		return
	}

	started := true
	if req.StartedChatbot != nil {
		started = *req.StartedChatbot
	}

	var resp *domain.OptionsResponse
	if started {
		resp = domain.DefaultOptions()
	} else {
		resp = domain.UploadOnlyOptions()
	}

	h.logger.Info("Options request processed", "started_chatbot", started, "options_count", len(resp.Options))
	writeJSON(w, http.StatusOK, resp)
}
