package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/acadsync/faculty-portal-api/internal/models"
)

// AuditRepository persists ingestion and swap-decision history to Postgres.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository constructs an AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// RecordIngestion stores one processed upload.
func (r *AuditRepository) RecordIngestion(ctx context.Context, entry models.IngestionAudit) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO ingestion_audit (id, actor, class_count, faculty_count, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, entry.ID, entry.Actor, entry.ClassCount, entry.FacultyCount, entry.CreatedAt); err != nil {
		return fmt.Errorf("record ingestion audit: %w", err)
	}
	return nil
}

// RecordSwapDecision stores the outcome of one swap-request decision.
func (r *AuditRepository) RecordSwapDecision(ctx context.Context, entry models.SwapAudit) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.DecidedAt.IsZero() {
		entry.DecidedAt = time.Now().UTC()
	}
	const query = `INSERT INTO swap_audit (id, request_id, requesting_faculty_id, requested_faculty_id, status, applied, decided_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, query, entry.ID, entry.RequestID, entry.RequestingFacultyID, entry.RequestedFacultyID, entry.Status, entry.Applied, entry.DecidedAt); err != nil {
		return fmt.Errorf("record swap audit: %w", err)
	}
	return nil
}

// ListIngestions returns the most recent upload records, newest first.
func (r *AuditRepository) ListIngestions(ctx context.Context, limit int) ([]models.IngestionAudit, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	const query = `SELECT id, actor, class_count, faculty_count, created_at FROM ingestion_audit ORDER BY created_at DESC LIMIT $1`
	var entries []models.IngestionAudit
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list ingestion audit: %w", err)
	}
	return entries, nil
}
