package service

import (
	"context"
	"os"

	"pdf-chat-api/internal/domain"
)

// PDFService combines download and extraction into the single step the
// conversation pipeline uses. The downloaded file is deleted after
// extraction, whether it succeeded or not.
type PDFService struct {
	fetcher   domain.PDFFetcher
	extractor domain.TextExtractor
	logger    domain.Logger
}

// NewPDFService creates a new PDF service instance
func NewPDFService(
	fetcher domain.PDFFetcher,
	extractor domain.TextExtractor,
	logger domain.Logger,
) *PDFService {
	return &PDFService{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger,
	}
}

// ProcessPDF downloads the document and extracts text from the requested
// page range.
func (s *PDFService) ProcessPDF(ctx context.Context, documentURL string, minPage, maxPage *int) (*domain.ExtractedDocument, error) {
	path, err := s.fetcher.Fetch(ctx, documentURL)
	if err != nil {
		return nil, err
	}
	defer s.cleanupFile(path)

	doc, err := s.extractor.Extract(path, minPage, maxPage)
	if err != nil {
		return nil, err
	}

	doc.SourceURL = documentURL
	return doc, nil
}

// cleanupFile deletes a downloaded PDF. Failures are logged, not returned:
// a stale temp file must never fail the request.
func (s *PDFService) cleanupFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to cleanup file", "path", path, "error", err)
		}
		return
	}
	s.logger.Debug("Cleaned up file", "path", path)
}
