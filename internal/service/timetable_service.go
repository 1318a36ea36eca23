package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/acadsync/faculty-portal-api/internal/dto"
	"github.com/acadsync/faculty-portal-api/internal/ingest"
	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/store"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
	"github.com/acadsync/faculty-portal-api/pkg/export"
)

const facultyCachePattern = "faculties:*"

// AuditRecorder abstracts the optional write-only audit trail.
type AuditRecorder interface {
	RecordIngestion(ctx context.Context, entry models.IngestionAudit) error
	RecordSwapDecision(ctx context.Context, entry models.SwapAudit) error
}

// TimetableService orchestrates ingestion and serves timetable queries.
type TimetableService struct {
	store   *store.TimetableStore
	cache   *CacheService
	audit   AuditRecorder
	metrics *MetricsService
	logger  *zap.Logger
	pdf     *export.PDFExporter
	csv     *export.CSVExporter
}

// NewTimetableService constructs a TimetableService. Cache, audit and metrics
// may be nil; the service degrades to plain store access.
func NewTimetableService(st *store.TimetableStore, cache *CacheService, audit AuditRecorder, metrics *MetricsService, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		store:   st,
		cache:   cache,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
		pdf:     export.NewPDFExporter(),
		csv:     export.NewCSVExporter(),
	}
}

// Ingest runs the full upload transformation and, on success, installs the
// new collections in one step. On any failure the store keeps its previous
// generation untouched.
func (s *TimetableService) Ingest(ctx context.Context, doc ingest.Document, actor string) (*dto.IngestSummary, error) {
	result, err := ingest.Build(doc)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordIngestion(false, 0, 0)
		}
		s.logger.Warn("timetable ingestion rejected", zap.String("actor", actor), zap.Error(err))
		return nil, err
	}

	s.store.ReplaceAll(result.Faculties, result.Classes)

	summary := &dto.IngestSummary{
		FacultyCount: len(result.Faculties),
		ClassCount:   len(result.Classes),
	}

	if s.metrics != nil {
		s.metrics.RecordIngestion(true, summary.FacultyCount, summary.ClassCount)
	}
	if err := s.cache.Invalidate(ctx, facultyCachePattern); err != nil {
		s.logger.Warn("stale timetable cache entries may remain", zap.Error(err))
	}
	if s.audit != nil {
		if err := s.audit.RecordIngestion(ctx, models.IngestionAudit{
			Actor:        actor,
			ClassCount:   summary.ClassCount,
			FacultyCount: summary.FacultyCount,
		}); err != nil {
			s.logger.Warn("failed to record ingestion audit", zap.Error(err))
		}
	}

	s.logger.Info("timetable ingested",
		zap.String("actor", actor),
		zap.Int("faculties", summary.FacultyCount),
		zap.Int("classes", summary.ClassCount),
	)
	return summary, nil
}

// IngestionHistory returns recent upload audit rows, newest first. Without a
// configured audit backend the history is empty.
func (s *TimetableService) IngestionHistory(ctx context.Context, limit int) ([]models.IngestionAudit, error) {
	browser, ok := s.audit.(interface {
		ListIngestions(ctx context.Context, limit int) ([]models.IngestionAudit, error)
	})
	if !ok {
		return []models.IngestionAudit{}, nil
	}
	return browser.ListIngestions(ctx, limit)
}

// Status reports whether data has been loaded and the collection sizes.
func (s *TimetableService) Status() dto.TimetableStatus {
	facultyCount, classCount := s.store.Counts()
	return dto.TimetableStatus{
		Loaded:       s.store.IsDataLoaded(),
		FacultyCount: facultyCount,
		ClassCount:   classCount,
	}
}

// ListFaculties returns all faculty records, optionally narrowed by a
// case-insensitive substring over name, email and subjects.
func (s *TimetableService) ListFaculties(ctx context.Context, search string) []models.Faculty {
	search = strings.ToLower(strings.TrimSpace(search))
	cacheKey := fmt.Sprintf("faculties:list:%s", search)

	var cached []models.Faculty
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached
	}

	faculties := s.store.AllFaculties()
	if search != "" {
		filtered := faculties[:0]
		for _, f := range faculties {
			if facultyMatches(f, search) {
				filtered = append(filtered, f)
			}
		}
		faculties = filtered
	}

	if err := s.cache.Set(ctx, cacheKey, faculties, 0); err != nil {
		s.logger.Debug("faculty list not cached", zap.Error(err))
	}
	return faculties
}

// GetFaculty returns the record with the given id.
func (s *TimetableService) GetFaculty(id string) (*models.Faculty, error) {
	faculty := s.store.FacultyByID(id)
	if faculty == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("faculty %s not found", id))
	}
	return faculty, nil
}

// ListClasses returns the class schedules exactly as ingested.
func (s *TimetableService) ListClasses() []models.Class {
	return s.store.AllClasses()
}

// GetTimetable returns the faculty's ordered slot list.
func (s *TimetableService) GetTimetable(ctx context.Context, facultyID string) ([]models.TimeSlot, error) {
	cacheKey := fmt.Sprintf("faculties:timetable:%s", facultyID)
	var cached []models.TimeSlot
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	slots, ok := s.store.FacultyTimetable(facultyID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("faculty %s not found", facultyID))
	}

	if err := s.cache.Set(ctx, cacheKey, slots, 0); err != nil {
		s.logger.Debug("timetable not cached", zap.Error(err))
	}
	return slots, nil
}

// SearchTimetable answers chatbot-style queries over one faculty's week. A
// query equal to a day name returns that day's slots; anything else matches
// as a substring over subject, class, time and day.
func (s *TimetableService) SearchTimetable(ctx context.Context, facultyID, query string) (map[string][]models.TimeSlot, error) {
	slots, err := s.GetTimetable(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	results := make(map[string][]models.TimeSlot)
	if query == "" {
		return results, nil
	}

	for _, day := range ingest.Days {
		if strings.ToLower(day) != query {
			continue
		}
		for _, slot := range slots {
			if slot.Day == day {
				results[day] = append(results[day], slot)
			}
		}
		return results, nil
	}

	for _, slot := range slots {
		if slotMatches(slot, query) {
			results[slot.Day] = append(results[slot.Day], slot)
		}
	}
	return results, nil
}

// ExportTimetable renders a faculty's weekly timetable as PDF or CSV.
func (s *TimetableService) ExportTimetable(ctx context.Context, facultyID, format string) ([]byte, string, error) {
	faculty, err := s.GetFaculty(facultyID)
	if err != nil {
		return nil, "", err
	}
	slots, err := s.GetTimetable(ctx, facultyID)
	if err != nil {
		return nil, "", err
	}

	dataset := timetableDataset(slots)
	switch format {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "", "pdf":
		payload, err := s.pdf.Render(dataset, fmt.Sprintf("Weekly Timetable - %s", faculty.Name))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func timetableDataset(slots []models.TimeSlot) export.Dataset {
	headers := []string{"Day", "Time", "Subject", "Class", "Type"}
	rows := make([]map[string]string, 0, len(slots))
	for _, slot := range slots {
		kind := "Class"
		if slot.IsLab {
			kind = fmt.Sprintf("Lab (hour %d/%d)", slot.LabHour, slot.TotalLabHours)
		}
		rows = append(rows, map[string]string{
			"Day":     slot.Day,
			"Time":    slot.Time,
			"Subject": slot.Subject,
			"Class":   slot.Class,
			"Type":    kind,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func facultyMatches(f models.Faculty, search string) bool {
	if strings.Contains(strings.ToLower(f.Name), search) || strings.Contains(strings.ToLower(f.Email), search) {
		return true
	}
	for _, subject := range f.Subjects {
		if strings.Contains(strings.ToLower(subject), search) {
			return true
		}
	}
	return false
}

func slotMatches(slot models.TimeSlot, query string) bool {
	return strings.Contains(strings.ToLower(slot.Subject), query) ||
		strings.Contains(strings.ToLower(slot.Class), query) ||
		strings.Contains(strings.ToLower(slot.Time), query) ||
		strings.Contains(strings.ToLower(slot.Day), query)
}
