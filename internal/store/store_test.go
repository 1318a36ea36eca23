package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadsync/faculty-portal-api/internal/models"
)

func seededStore() *TimetableStore {
	s := New()
	s.ReplaceAll(
		[]models.Faculty{
			{
				ID:       "faculty-1",
				Name:     "A One",
				Email:    "a.one@faculty.edu",
				Password: "one",
				Subjects: []string{"DM"},
				TimeSlots: []models.TimeSlot{
					{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM", Class: "CSE-A"},
					{Day: "TUESDAY", Time: "1:00-2:00", Subject: "OOPJ", Class: "CSE-A"},
				},
			},
			{
				ID:       "faculty-2",
				Name:     "B Two",
				Email:    "b.two@faculty.edu",
				Password: "two",
				Subjects: []string{"OS"},
				TimeSlots: []models.TimeSlot{
					{Day: "MONDAY", Time: "2:00-3:00", Subject: "OS", Class: "CSE-A"},
				},
			},
		},
		[]models.Class{{Name: "CSE-A", Timetable: map[string]map[string]models.SlotAssignment{}}},
	)
	return s
}

func TestStoreStartsEmptyAndUnloaded(t *testing.T) {
	s := New()
	assert.False(t, s.IsDataLoaded())
	assert.Empty(t, s.AllFaculties())
	assert.Empty(t, s.AllClasses())
	assert.Nil(t, s.FacultyByID("faculty-1"))
}

func TestReplaceAllLatchesLoadedFlag(t *testing.T) {
	s := seededStore()
	assert.True(t, s.IsDataLoaded())

	facultyCount, classCount := s.Counts()
	assert.Equal(t, 2, facultyCount)
	assert.Equal(t, 1, classCount)

	// A later wholesale replace keeps the flag latched.
	s.ReplaceAll(nil, nil)
	assert.True(t, s.IsDataLoaded())
	facultyCount, _ = s.Counts()
	assert.Zero(t, facultyCount)
}

func TestReadsReturnDefensiveCopies(t *testing.T) {
	s := seededStore()

	all := s.AllFaculties()
	all[0].TimeSlots[0].Subject = "TAMPERED"
	all[0].Subjects[0] = "TAMPERED"

	fresh := s.FacultyByID("faculty-1")
	require.NotNil(t, fresh)
	assert.Equal(t, "DM", fresh.TimeSlots[0].Subject)
	assert.Equal(t, "DM", fresh.Subjects[0])

	fresh.TimeSlots[0].Subject = "TAMPERED-AGAIN"
	again := s.FacultyByID("faculty-1")
	assert.Equal(t, "DM", again.TimeSlots[0].Subject)
}

func TestLookupsExactMatch(t *testing.T) {
	s := seededStore()

	assert.NotNil(t, s.FacultyByEmail("a.one@faculty.edu"))
	assert.Nil(t, s.FacultyByEmail("A.ONE@faculty.edu"))
	assert.Nil(t, s.FacultyByID("faculty-9"))

	assert.NotNil(t, s.FacultyByCredentials("a.one@faculty.edu", "one"))
	assert.Nil(t, s.FacultyByCredentials("a.one@faculty.edu", "wrong"))
}

func TestFacultyTimetableCopies(t *testing.T) {
	s := seededStore()

	slots, ok := s.FacultyTimetable("faculty-1")
	require.True(t, ok)
	require.Len(t, slots, 2)

	slots[0].Subject = "TAMPERED"
	fresh, _ := s.FacultyTimetable("faculty-1")
	assert.Equal(t, "DM", fresh[0].Subject)

	_, ok = s.FacultyTimetable("faculty-9")
	assert.False(t, ok)
}

func TestTransferSlotMovesRecordUnchanged(t *testing.T) {
	s := seededStore()

	moved := s.TransferSlot("faculty-1", "faculty-2", models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"})
	require.True(t, moved)

	from, _ := s.FacultyTimetable("faculty-1")
	to, _ := s.FacultyTimetable("faculty-2")
	assert.Len(t, from, 1)
	assert.Len(t, to, 2)
	assert.Equal(t, "DM", to[1].Subject)
	assert.Equal(t, "CSE-A", to[1].Class)
}

func TestTransferSlotMissLeavesStateUntouched(t *testing.T) {
	s := seededStore()

	assert.False(t, s.TransferSlot("faculty-1", "faculty-2", models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "OTHER"}))
	assert.False(t, s.TransferSlot("faculty-1", "faculty-9", models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"}))

	from, _ := s.FacultyTimetable("faculty-1")
	to, _ := s.FacultyTimetable("faculty-2")
	assert.Len(t, from, 2)
	assert.Len(t, to, 1)
}

func TestExchangeSlotsSwapsInPlace(t *testing.T) {
	s := seededStore()

	ok := s.ExchangeSlots(
		"faculty-1", models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
		"faculty-2", models.TimeSlot{Day: "MONDAY", Time: "2:00-3:00", Subject: "OS"},
	)
	require.True(t, ok)

	from, _ := s.FacultyTimetable("faculty-1")
	to, _ := s.FacultyTimetable("faculty-2")
	assert.Len(t, from, 2)
	assert.Len(t, to, 1)
	assert.Equal(t, "OS", from[0].Subject)
	assert.Equal(t, "DM", to[0].Subject)
}

func TestExchangeSlotsMissLeavesBothUntouched(t *testing.T) {
	s := seededStore()

	ok := s.ExchangeSlots(
		"faculty-1", models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
		"faculty-2", models.TimeSlot{Day: "FRIDAY", Time: "2:00-3:00", Subject: "MISSING"},
	)
	assert.False(t, ok)

	from, _ := s.FacultyTimetable("faculty-1")
	to, _ := s.FacultyTimetable("faculty-2")
	assert.Equal(t, "DM", from[0].Subject)
	assert.Equal(t, "OS", to[0].Subject)
}
