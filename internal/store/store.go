package store

import (
	"sync"

	"github.com/acadsync/faculty-portal-api/internal/models"
)

// TimetableStore owns the faculty and class collections produced by
// ingestion. Both collections are replaced wholesale, never merged; reads
// hand out copies so callers cannot reach internal state. All access goes
// through a single RWMutex, and swap mutations run inside one critical
// section so a reader never observes a half-applied exchange.
type TimetableStore struct {
	mu        sync.RWMutex
	faculties []models.Faculty
	classes   []models.Class
	loaded    bool
}

// New constructs an empty store; IsDataLoaded stays false until the first
// successful ingestion.
func New() *TimetableStore {
	return &TimetableStore{}
}

// ReplaceAll installs the collections built by an ingestion run in one step
// and latches the loaded flag.
func (s *TimetableStore) ReplaceAll(faculties []models.Faculty, classes []models.Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faculties = faculties
	s.classes = classes
	s.loaded = true
}

// IsDataLoaded reports whether at least one ingestion has completed in the
// process lifetime.
func (s *TimetableStore) IsDataLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Counts returns the number of faculty and class records currently held.
func (s *TimetableStore) Counts() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.faculties), len(s.classes)
}

// AllFaculties returns deep copies of every faculty record in first-seen
// order.
func (s *TimetableStore) AllFaculties() []models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Faculty, 0, len(s.faculties))
	for _, f := range s.faculties {
		out = append(out, f.Clone())
	}
	return out
}

// AllClasses returns deep copies of the ingested class schedules.
func (s *TimetableStore) AllClasses() []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Class, 0, len(s.classes))
	for _, c := range s.classes {
		out = append(out, c.Clone())
	}
	return out
}

// FacultyByID returns a copy of the record with the given id, nil on miss.
func (s *TimetableStore) FacultyByID(id string) *models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findCopy(func(f *models.Faculty) bool { return f.ID == id })
}

// FacultyByEmail returns a copy of the record with the given email, nil on
// miss. Matching is exact.
func (s *TimetableStore) FacultyByEmail(email string) *models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findCopy(func(f *models.Faculty) bool { return f.Email == email })
}

// FacultyByCredentials validates a derived email/password pair, returning a
// copy of the matching record or nil.
func (s *TimetableStore) FacultyByCredentials(email, password string) *models.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findCopy(func(f *models.Faculty) bool { return f.Email == email && f.Password == password })
}

// FacultyTimetable returns a copy of the faculty's slot list. The second
// return distinguishes an unknown faculty from one with an empty week.
func (s *TimetableStore) FacultyTimetable(id string) ([]models.TimeSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.faculties {
		if s.faculties[i].ID == id {
			return append([]models.TimeSlot(nil), s.faculties[i].TimeSlots...), true
		}
	}
	return nil, false
}

// TransferSlot moves the matching slot record from one faculty's list to
// another's, unchanged. It reports false, mutating nothing, when either
// faculty is unknown or the slot is not found on the source side.
func (s *TimetableStore) TransferSlot(fromID, toID string, slot models.TimeSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.find(fromID)
	to := s.find(toID)
	if from == nil || to == nil {
		return false
	}

	idx := slotIndex(from.TimeSlots, slot)
	if idx < 0 {
		return false
	}

	record := from.TimeSlots[idx]
	from.TimeSlots = append(from.TimeSlots[:idx], from.TimeSlots[idx+1:]...)
	to.TimeSlots = append(to.TimeSlots, record)
	return true
}

// ExchangeSlots swaps the two matching records between the faculties in
// place. It reports false, mutating nothing, when either faculty or either
// slot cannot be located.
func (s *TimetableStore) ExchangeSlots(aID string, aSlot models.TimeSlot, bID string, bSlot models.TimeSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.find(aID)
	b := s.find(bID)
	if a == nil || b == nil {
		return false
	}

	aIdx := slotIndex(a.TimeSlots, aSlot)
	bIdx := slotIndex(b.TimeSlots, bSlot)
	if aIdx < 0 || bIdx < 0 {
		return false
	}

	a.TimeSlots[aIdx], b.TimeSlots[bIdx] = b.TimeSlots[bIdx], a.TimeSlots[aIdx]
	return true
}

func (s *TimetableStore) find(id string) *models.Faculty {
	for i := range s.faculties {
		if s.faculties[i].ID == id {
			return &s.faculties[i]
		}
	}
	return nil
}

func (s *TimetableStore) findCopy(match func(*models.Faculty) bool) *models.Faculty {
	for i := range s.faculties {
		if match(&s.faculties[i]) {
			clone := s.faculties[i].Clone()
			return &clone
		}
	}
	return nil
}

func slotIndex(slots []models.TimeSlot, target models.TimeSlot) int {
	for i, slot := range slots {
		if slot.SameCell(target) {
			return i
		}
	}
	return -1
}
