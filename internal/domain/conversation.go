package domain

import (
	"net/url"
	"strings"

	apperrors "pdf-chat-api/pkg/errors"
)

// ActionType identifies the conversation operation requested by the caller.
type ActionType string

const (
	ActionQuestionAnswer    ActionType = "question_answer"
	ActionSummarizer        ActionType = "summarizer"
	ActionGenerateQuestions ActionType = "generate_questions"
)

// AllActions returns the supported conversation actions.
func AllActions() []ActionType {
	return []ActionType{ActionQuestionAnswer, ActionSummarizer, ActionGenerateQuestions}
}

// IsValidAction checks whether the action is one of the supported operations.
func IsValidAction(action string) bool {
	for _, a := range AllActions() {
		if string(a) == action {
			return true
		}
	}
	return false
}

// UserType identifies the originator of a conversation message.
const (
	UserTypeUser    = "User"
	UserTypeChatbot = "Chatbot"
)

// ConversationRequest is the body of POST /conversation/.
type ConversationRequest struct {
	Action      string `json:"action"`
	DocumentURL string `json:"documenturl"`
	Question    string `json:"question,omitempty"`
	MinPage     *int   `json:"min_page,omitempty"`
	MaxPage     *int   `json:"max_page,omitempty"`
}

// Normalize trims and lowercases fields so validation and dispatch
// see canonical values.
func (r *ConversationRequest) Normalize() {
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
	r.DocumentURL = strings.TrimSpace(r.DocumentURL)
	r.Question = strings.TrimSpace(r.Question)
}

// Validate checks request shape before any network I/O happens.
func (r *ConversationRequest) Validate() error {
	if r.Action == "" {
		return apperrors.NewValidationError("Missing required field: action")
	}
	if r.DocumentURL == "" {
		return apperrors.NewValidationError("Missing required field: documenturl")
	}
	if !IsValidAction(r.Action) {
		return apperrors.NewValidationError("Invalid action type").
			WithDetail("action", r.Action).
			WithDetail("allowed_actions", AllActions())
	}

	parsed, err := url.Parse(r.DocumentURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return apperrors.NewPDFURLInvalidError("Invalid document URL", r.DocumentURL)
	}

	if r.Action == string(ActionQuestionAnswer) && r.Question == "" {
		return apperrors.NewValidationError("Question is required for question_answer action")
	}

	if r.MinPage != nil && *r.MinPage < 1 {
		return apperrors.NewValidationError("Minimum page must be greater than 0")
	}
	if r.MaxPage != nil && *r.MaxPage < 1 {
		return apperrors.NewValidationError("Maximum page must be greater than 0")
	}
	if r.MinPage != nil && r.MaxPage != nil && *r.MinPage > *r.MaxPage {
		return apperrors.NewValidationError("Maximum page must be greater than or equal to minimum page")
	}

	return nil
}

// ConversationContent is the success payload inside the response envelope.
type ConversationContent struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

// ConversationResponse is the uniform success envelope for POST /conversation/.
type ConversationResponse struct {
	Content  ConversationContent `json:"content"`
	UserType string              `json:"userType"`
}

// NewSuccessResponse builds the success envelope for a completed action.
func NewSuccessResponse(data, message string) *ConversationResponse {
	return &ConversationResponse{
		Content: ConversationContent{
			Success: true,
			Message: message,
			Data:    data,
		},
		UserType: UserTypeChatbot,
	}
}

// OptionsRequest is the body of POST /options/.
type OptionsRequest struct {
	ChatbotID      string `json:"chatbotId,omitempty"`
	StartedChatbot *bool  `json:"startedChatbot,omitempty"`
}

// Option is a single menu entry returned by the options endpoint.
type Option struct {
	Action      string `json:"action"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// OptionsResponse is the payload of POST /options/.
type OptionsResponse struct {
	Options []Option `json:"options"`
}

// DefaultOptions returns the full action menu shown once a chatbot
// session has started.
func DefaultOptions() *OptionsResponse {
	return &OptionsResponse{
		Options: []Option{
			{
				Action:      string(ActionQuestionAnswer),
				Label:       "Ask a Question",
				Description: "Get answers from your PDF document",
			},
			{
				Action:      string(ActionSummarizer),
				Label:       "Summarize Document",
				Description: "Get a comprehensive summary of your PDF",
			},
			{
				Action:      string(ActionGenerateQuestions),
				Label:       "Generate Questions",
				Description: "Generate study questions from your PDF",
			},
			{
				Action:      "main_menu",
				Label:       "Main Menu",
				Description: "Go back to main menu and start a new conversation",
			},
		},
	}
}

// UploadOnlyOptions returns the single upload prompt shown before a
// chatbot session starts.
func UploadOnlyOptions() *OptionsResponse {
	return &OptionsResponse{
		Options: []Option{
			{
				Action:      "upload_file",
				Label:       "Upload PDF File",
				Description: "Upload a PDF document to start chatting",
			},
		},
	}
}
