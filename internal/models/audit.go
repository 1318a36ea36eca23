package models

import "time"

// IngestionAudit records one processed upload. The audit trail is write-only
// history; the timetable itself is never read back from it.
type IngestionAudit struct {
	ID           string    `db:"id"`
	Actor        string    `db:"actor"`
	ClassCount   int       `db:"class_count"`
	FacultyCount int       `db:"faculty_count"`
	CreatedAt    time.Time `db:"created_at"`
}

// SwapAudit records the outcome of one swap-request decision.
type SwapAudit struct {
	ID                  string     `db:"id"`
	RequestID           string     `db:"request_id"`
	RequestingFacultyID string     `db:"requesting_faculty_id"`
	RequestedFacultyID  string     `db:"requested_faculty_id"`
	Status              SwapStatus `db:"status"`
	Applied             bool       `db:"applied"`
	DecidedAt           time.Time  `db:"decided_at"`
}
