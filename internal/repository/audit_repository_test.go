package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadsync/faculty-portal-api/internal/models"
)

func newAuditMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestAuditRepositoryRecordIngestion(t *testing.T) {
	db, mock, cleanup := newAuditMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO ingestion_audit").
		WithArgs("audit-1", "admin", 3, 12, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordIngestion(context.Background(), models.IngestionAudit{
		ID:           "audit-1",
		Actor:        "admin",
		ClassCount:   3,
		FacultyCount: 12,
		CreatedAt:    now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryRecordIngestionFillsDefaults(t *testing.T) {
	db, mock, cleanup := newAuditMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO ingestion_audit").
		WithArgs(sqlmock.AnyArg(), "admin", 1, 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordIngestion(context.Background(), models.IngestionAudit{
		Actor:        "admin",
		ClassCount:   1,
		FacultyCount: 2,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryRecordSwapDecision(t *testing.T) {
	db, mock, cleanup := newAuditMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO swap_audit").
		WithArgs(sqlmock.AnyArg(), "swap-1700000000001", "faculty-1", "faculty-2", models.SwapAccepted, true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordSwapDecision(context.Background(), models.SwapAudit{
		RequestID:           "swap-1700000000001",
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		Status:              models.SwapAccepted,
		Applied:             true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListIngestions(t *testing.T) {
	db, mock, cleanup := newAuditMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "actor", "class_count", "faculty_count", "created_at"}).
		AddRow("audit-2", "admin", 2, 8, now).
		AddRow("audit-1", "system", 1, 4, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, actor, class_count, faculty_count, created_at FROM ingestion_audit ORDER BY created_at DESC LIMIT $1")).
		WithArgs(20).
		WillReturnRows(rows)

	entries, err := repo.ListIngestions(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "audit-2", entries[0].ID)
	assert.Equal(t, 8, entries[0].FacultyCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
