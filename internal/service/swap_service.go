package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadsync/faculty-portal-api/internal/dto"
	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/store"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
)

// SwapService maintains swap-request records and applies the slot mutation
// when a request is accepted. Requests live in memory for the process
// lifetime and are never deleted.
type SwapService struct {
	mu        sync.Mutex
	requests  []models.SwapRequest
	store     *store.TimetableStore
	validator *validator.Validate
	logger    *zap.Logger
	cache     *CacheService
	audit     AuditRecorder
	metrics   *MetricsService
	now       func() time.Time
}

// NewSwapService constructs a SwapService. Cache, audit and metrics may be
// nil.
func NewSwapService(st *store.TimetableStore, validate *validator.Validate, logger *zap.Logger, cache *CacheService, audit AuditRecorder, metrics *MetricsService) *SwapService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwapService{
		store:     st,
		validator: validate,
		logger:    logger,
		cache:     cache,
		audit:     audit,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Create appends a new pending request. The slot being given up is not
// checked against the requester's timetable; a stale slot simply fails to
// resolve at acceptance time.
func (s *SwapService) Create(req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid swap request payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := models.SwapRequest{
		ID:                  fmt.Sprintf("swap-%d", s.now().UnixMilli()),
		RequestingFacultyID: req.RequestingFacultyID,
		RequestedFacultyID:  req.RequestedFacultyID,
		TimeSlot:            req.TimeSlot,
		ProposedTimeSlot:    req.ProposedTimeSlot,
		Reason:              req.Reason,
		Status:              models.SwapPending,
		CreatedAt:           s.now(),
	}
	s.requests = append(s.requests, created)

	out := created.Clone()
	return &out, nil
}

// ListForFaculty returns every request where the faculty is either party,
// optionally narrowed to one status. An empty faculty id lists everything.
func (s *SwapService) ListForFaculty(facultyID string, status models.SwapStatus) []models.SwapRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SwapRequest, 0)
	for _, req := range s.requests {
		if facultyID != "" && !req.Involves(facultyID) {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, req.Clone())
	}
	return out
}

// Get returns a copy of the request with the given id, nil on miss.
func (s *SwapService) Get(requestID string) *models.SwapRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := s.findLocked(requestID)
	if req == nil {
		return nil
	}
	out := req.Clone()
	return &out
}

// UpdateStatus transitions a pending request to accepted or rejected.
//
// Acceptance mutates the store: with a proposed slot the two matching
// records are exchanged in place, without one the requester's record moves
// to the target's list. A failed slot or faculty lookup leaves both
// timetables unchanged while the status still transitions; that mirrors how
// approvals are surfaced to users, the decision stands even when the slot
// has since been swapped away. Requests already decided are returned
// unchanged.
func (s *SwapService) UpdateStatus(ctx context.Context, requestID string, status models.SwapStatus) (*models.SwapRequest, error) {
	if status != models.SwapAccepted && status != models.SwapRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("status must be %q or %q", models.SwapAccepted, models.SwapRejected))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := s.findLocked(requestID)
	if req == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("swap request %s not found", requestID))
	}
	if req.Status != models.SwapPending {
		out := req.Clone()
		return &out, nil
	}

	req.Status = status

	applied := false
	if status == models.SwapAccepted {
		applied = s.applySwap(*req)
		if !applied {
			s.logger.Warn("accepted swap could not be applied",
				zap.String("request_id", req.ID),
				zap.String("requesting", req.RequestingFacultyID),
				zap.String("requested", req.RequestedFacultyID),
			)
		}
		if err := s.cache.Invalidate(ctx, facultyCachePattern); err != nil {
			s.logger.Warn("stale timetable cache entries may remain", zap.Error(err))
		}
	}

	if s.metrics != nil {
		s.metrics.RecordSwapDecision(string(status))
	}
	if s.audit != nil {
		if err := s.audit.RecordSwapDecision(ctx, models.SwapAudit{
			RequestID:           req.ID,
			RequestingFacultyID: req.RequestingFacultyID,
			RequestedFacultyID:  req.RequestedFacultyID,
			Status:              status,
			Applied:             applied,
		}); err != nil {
			s.logger.Warn("failed to record swap audit", zap.Error(err))
		}
	}

	out := req.Clone()
	return &out, nil
}

func (s *SwapService) applySwap(req models.SwapRequest) bool {
	if req.ProposedTimeSlot != nil {
		return s.store.ExchangeSlots(req.RequestingFacultyID, req.TimeSlot, req.RequestedFacultyID, *req.ProposedTimeSlot)
	}
	return s.store.TransferSlot(req.RequestingFacultyID, req.RequestedFacultyID, req.TimeSlot)
}

func (s *SwapService) findLocked(id string) *models.SwapRequest {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return &s.requests[i]
		}
	}
	return nil
}
