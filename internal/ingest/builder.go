package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/acadsync/faculty-portal-api/internal/models"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
)

// emailDomain is appended to the normalized faculty name to form the derived
// login email.
const emailDomain = "@faculty.edu"

// FacultyAssignment declares which subjects a faculty member teaches for a
// class, independent of specific time slots. It only seeds the subject list.
type FacultyAssignment struct {
	Subject string `json:"subject"`
	Faculty string `json:"faculty"`
}

// ClassDocument is one class entry of an uploaded timetable document.
type ClassDocument struct {
	Name               string                                      `json:"name"`
	FacultyAssignments []FacultyAssignment                         `json:"facultyAssignments"`
	Timetable          map[string]map[string]models.SlotAssignment `json:"timetable"`
}

// Document is the recognized shape of an uploaded timetable. Classes stays
// raw so a malformed value can be rejected as a whole rather than partially
// decoded.
type Document struct {
	Classes json.RawMessage `json:"classes"`
}

// Result carries the collections produced by one ingestion run, built fully
// aside so the caller can install them atomically.
type Result struct {
	Faculties []models.Faculty
	Classes   []models.Class
}

// Build transforms a class-centric upload into the faculty-centric
// collections. It makes two passes: the first creates one faculty record per
// unique display name out of the assignment lists, the second walks every
// timetable cell in canonical day and grid order and appends the expanded
// slot records to the owning faculty.
//
// A missing or non-array classes value aborts the whole run with
// ErrMalformedDocument and no partial result.
func Build(doc Document) (*Result, error) {
	classes, err := decodeClasses(doc)
	if err != nil {
		return nil, err
	}

	registry := newRegistry()
	for _, cls := range classes {
		for _, assignment := range cls.FacultyAssignments {
			for _, name := range SplitFacultyNames(assignment.Faculty) {
				registry.add(name, assignment.Subject)
			}
		}
	}

	for _, cls := range classes {
		if cls.Timetable == nil {
			continue
		}
		for _, day := range Days {
			slots, ok := cls.Timetable[day]
			if !ok {
				continue
			}
			for _, time := range TimeGrid {
				cell, ok := slots[time]
				if !ok || cell.Subject == "" {
					continue
				}
				for _, sub := range ParseSlot(cell.Subject, cell.Faculty) {
					isLab := IsLab(sub.Subject)
					subject := NormalizeSubject(sub.Subject)
					for _, name := range SplitFacultyNames(sub.Faculty) {
						faculty := registry.lookup(name)
						if faculty == nil {
							// Names unseen during the assignment pass own no
							// account and are skipped.
							continue
						}
						faculty.TimeSlots = append(faculty.TimeSlots, ExpandSlot(day, time, subject, cls.Name, isLab)...)
					}
				}
			}
		}
	}

	result := &Result{
		Faculties: registry.ordered(),
		Classes:   make([]models.Class, 0, len(classes)),
	}
	for _, cls := range classes {
		timetable := cls.Timetable
		if timetable == nil {
			timetable = map[string]map[string]models.SlotAssignment{}
		}
		result.Classes = append(result.Classes, models.Class{Name: cls.Name, Timetable: timetable})
	}
	return result, nil
}

func decodeClasses(doc Document) ([]ClassDocument, error) {
	raw := strings.TrimSpace(string(doc.Classes))
	if raw == "" || raw == "null" {
		return nil, appErrors.ErrMalformedDocument
	}

	var classes []ClassDocument
	if err := json.Unmarshal(doc.Classes, &classes); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedDocument.Code, appErrors.ErrMalformedDocument.Status, "classes is not an array of class schedules")
	}
	return classes, nil
}

// registry accumulates faculty records keyed by display name, preserving
// first-seen order. Two distinct people sharing a display name collide into
// one record; the upload format carries no secondary identifier.
type registry struct {
	byName map[string]*models.Faculty
	order  []string
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]*models.Faculty)}
}

func (r *registry) add(name, subject string) {
	faculty, ok := r.byName[name]
	if !ok {
		faculty = &models.Faculty{
			ID:       fmt.Sprintf("faculty-%d", len(r.order)+1),
			Name:     name,
			Email:    DeriveEmail(name),
			Password: DerivePassword(name),
			Subjects: []string{},
		}
		r.byName[name] = faculty
		r.order = append(r.order, name)
	}
	for _, existing := range faculty.Subjects {
		if existing == subject {
			return
		}
	}
	faculty.Subjects = append(faculty.Subjects, subject)
}

func (r *registry) lookup(name string) *models.Faculty {
	return r.byName[name]
}

func (r *registry) ordered() []models.Faculty {
	out := make([]models.Faculty, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.byName[name])
	}
	return out
}

// DeriveEmail lowercases the display name, maps every non-alphanumeric rune
// to a dot and appends the faculty domain.
func DeriveEmail(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '.'
	}, strings.ToLower(name))
	return mapped + emailDomain
}

// DerivePassword is the lowercase of the last whitespace-separated token of
// the display name.
func DerivePassword(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}
