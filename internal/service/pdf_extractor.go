package service

import (
	"fmt"
	"os"
	"strings"

	"pdf-chat-api/internal/domain"
	apperrors "pdf-chat-api/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// FitzTextExtractor extracts page text from local PDF files using MuPDF.
type FitzTextExtractor struct {
	config domain.Config
	logger domain.Logger
}

// NewTextExtractor creates a new text extractor
func NewTextExtractor(config domain.Config, logger domain.Logger) *FitzTextExtractor {
	return &FitzTextExtractor{
		config: config,
		logger: logger,
	}
}

// Extract reads text from the given page range, prefixing every page with a
// "--- Page N ---" marker. Nil bounds fall back to configured defaults and
// both bounds are clamped into [1, total pages]. A single unreadable page is
// logged and skipped; only a fully empty result fails.
func (e *FitzTextExtractor) Extract(path string, minPage, maxPage *int) (*domain.ExtractedDocument, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewPDFExtractionError(fmt.Sprintf("PDF file not found: %s", path), err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, apperrors.NewPDFInvalidFormatError("Invalid PDF file format", err)
	}
	defer doc.Close()

	totalPages := doc.NumPage()

	min := e.config.GetDefaultMinPage()
	if minPage != nil {
		min = *minPage
	}
	max := e.config.GetDefaultMaxPage()
	if maxPage != nil {
		max = *maxPage
	}

	// Clamp into the document's actual bounds.
	if min < 1 {
		min = 1
	}
	if max > totalPages {
		max = totalPages
	}

	if min > max {
		return nil, apperrors.NewPDFInvalidPageRangeError(min, max)
	}

	e.logger.Info("Extracting text from PDF", "path", path, "min_page", min, "max_page", max, "total_pages", totalPages)

	var sb strings.Builder
	for i := min - 1; i < max; i++ {
		text, err := doc.Text(i)
		if err != nil {
			e.logger.Warn("Error extracting page", "page", i+1, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n\n--- Page %d ---\n", i+1))
		sb.WriteString(text)
	}

	fullText := sb.String()
	if strings.TrimSpace(fullText) == "" {
		return nil, apperrors.NewPDFExtractionError("No text could be extracted from PDF", nil)
	}

	e.logger.Info("Text extracted successfully", "path", path, "pages", max-min+1)

	return &domain.ExtractedDocument{
		Text:    fullText,
		MinPage: min,
		MaxPage: max,
	}, nil
}
