package service

import (
	"fmt"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"
)

// QAFallbackMessage is returned by the QA agent when the answer is not in
// the document.
const QAFallbackMessage = "I'm sorry, but I couldn't find the answer to your question in the provided PDF document."

// maxContextChars caps how much extracted text is embedded in a prompt, to
// stay within the model's context window.
const maxContextChars = 100000

// Agent identities, one per action.
const (
	qaAgentName          = "PDF-Only QA Agent"
	summaryAgentName     = "Summarizer"
	questionGenAgentName = "QuestionGenerator"

	qaAgentRole          = "Answer user questions using only the content of a specific PDF file."
	summaryAgentRole     = "PDF summarizer"
	questionGenAgentRole = "PDF educational assistant"
)

// PromptBuilder holds the per-action instruction sets and prompt templates.
// All action-specific behavior of the pipeline lives here.
type PromptBuilder struct {
	config domain.Config
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder(config domain.Config) *PromptBuilder {
	return &PromptBuilder{config: config}
}

// Build returns the agent configuration and prompt for the given action.
// The question is only used for question_answer.
func (b *PromptBuilder) Build(action domain.ActionType, doc *domain.ExtractedDocument, question string) (domain.AgentConfig, string, error) {
	text := truncateContext(doc.Text)

	switch action {
	case domain.ActionQuestionAnswer:
		return b.questionAnswer(text, question)
	case domain.ActionSummarizer:
		return b.summarize(text)
	case domain.ActionGenerateQuestions:
		return b.generateQuestions(text)
	default:
		return domain.AgentConfig{}, "", apperrors.NewValidationError("Invalid action type").
			WithDetail("action", string(action))
	}
}

func (b *PromptBuilder) questionAnswer(text, question string) (domain.AgentConfig, string, error) {
	agent := domain.AgentConfig{
		Name:        qaAgentName,
		Description: "Answers questions using only the content of a provided PDF document.",
		Role:        qaAgentRole,
		Instructions: []string{
			"Answer using only the PDF content between the context markers.",
			"Do not use external knowledge, inference, or assumptions.",
			fmt.Sprintf("If the answer cannot be found in the content, reply exactly: %q", QAFallbackMessage),
		},
		ModelID:  b.config.GetGroqModelID(),
		Markdown: true,
	}

	prompt := fmt.Sprintf(`Answer the following question using **only** the PDF content below. Do not use external knowledge, inference, or assumptions. If the answer cannot be found, say: %q

=== PDF CONTENT START ===
%s
=== PDF CONTENT END ===

Question: %s`, QAFallbackMessage, text, question)

	return agent, prompt, nil
}

func (b *PromptBuilder) summarize(text string) (domain.AgentConfig, string, error) {
	minWords := b.config.GetSummaryMinWords()

	agent := domain.AgentConfig{
		Name:        summaryAgentName,
		Description: fmt.Sprintf("Summarizes a PDF document in a minimum of %d words.", minWords),
		Role:        summaryAgentRole,
		Instructions: []string{
			fmt.Sprintf("Provide a clear, structured summary with at least %d words.", minWords),
			"Use headings and bullet points where appropriate.",
		},
		ModelID:  b.config.GetGroqModelID(),
		Markdown: true,
	}

	prompt := fmt.Sprintf(`You are a professional summarizer AI. Summarize the following academic content in **at least %d words**. Ensure clarity, depth, and structure with sections, bullet points, and examples if relevant.

%s`, minWords, text)

	return agent, prompt, nil
}

func (b *PromptBuilder) generateQuestions(text string) (domain.AgentConfig, string, error) {
	count := b.config.GetQuestionsCount()

	agent := domain.AgentConfig{
		Name:        questionGenAgentName,
		Description: "Generates numbered questions and highlights key points from academic text.",
		Role:        questionGenAgentRole,
		Instructions: []string{
			fmt.Sprintf("Generate %d questions based on the input text.", count),
			"Identify the most important point from the text.",
		},
		ModelID:  b.config.GetGroqModelID(),
		Markdown: true,
	}

	prompt := fmt.Sprintf(`You are an educational assistant. Based on the following academic text:

%s

Please do the following:
1. Generate %d thoughtful and relevant questions that test understanding of the content.
2. Highlight the most important concept or point from the text.`, text, count)

	return agent, prompt, nil
}

// truncateContext bounds the embedded document text.
func truncateContext(text string) string {
	if len(text) <= maxContextChars {
		return text
	}
	return text[:maxContextChars] + "\n\n...[Content truncated for model limit]..."
}
