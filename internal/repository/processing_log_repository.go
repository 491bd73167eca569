package repository

import (
	"context"
	"fmt"

	"pdf-chat-api/internal/domain"
)

// SupabaseProcessingLogRepository persists processing logs in the
// processing_logs table.
type SupabaseProcessingLogRepository struct {
	supabaseClient *SupabaseClient
	logger         domain.Logger
}

// NewSupabaseProcessingLogRepository creates a new processing log repository
func NewSupabaseProcessingLogRepository(supabaseClient *SupabaseClient, logger domain.Logger) domain.ProcessingLogRepository {
	return &SupabaseProcessingLogRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Record inserts one processing log row.
func (r *SupabaseProcessingLogRepository) Record(ctx context.Context, entry *domain.ProcessingLog) error {
	client := r.supabaseClient.GetClient()
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"action_type":        entry.ActionType,
		"document_url":       entry.DocumentURL,
		"status":             entry.Status,
		"processing_time_ms": entry.DurationMS,
	}
	if entry.ErrorCode != "" {
		row["error_code"] = entry.ErrorCode
	}
	if entry.ErrorMessage != "" {
		row["error_message"] = entry.ErrorMessage
	}

	_, _, err := client.From("processing_logs").Insert(row, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to insert processing log: %w", err)
	}

	r.logger.Debug("Processing log recorded", "action", entry.ActionType, "status", entry.Status)
	return nil
}
