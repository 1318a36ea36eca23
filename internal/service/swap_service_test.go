package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadsync/faculty-portal-api/internal/dto"
	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/store"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
)

func seedSwapStore() *store.TimetableStore {
	st := store.New()
	st.ReplaceAll(
		[]models.Faculty{
			{
				ID:   "faculty-1",
				Name: "A One",
				TimeSlots: []models.TimeSlot{
					{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM", Class: "CSE-A"},
				},
			},
			{
				ID:   "faculty-2",
				Name: "B Two",
				TimeSlots: []models.TimeSlot{
					{Day: "TUESDAY", Time: "1:00-2:00", Subject: "OS", Class: "CSE-A"},
				},
			},
		},
		nil,
	)
	return st
}

func newTestSwapService(st *store.TimetableStore) *SwapService {
	svc := NewSwapService(st, nil, nil, nil, nil, nil)
	base := time.UnixMilli(1700000000000)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	return svc
}

func TestSwapCreateStartsPending(t *testing.T) {
	svc := newTestSwapService(seedSwapStore())

	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
		Reason:              "clash",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SwapPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.ID, "swap-")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestSwapCreateRejectsMissingParties(t *testing.T) {
	svc := newTestSwapService(seedSwapStore())

	_, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSwapListFiltersByPartyAndStatus(t *testing.T) {
	svc := newTestSwapService(seedSwapStore())

	first, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
	})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-2",
		RequestedFacultyID:  "faculty-3",
		TimeSlot:            models.TimeSlot{Day: "TUESDAY", Time: "1:00-2:00", Subject: "OS"},
	})
	require.NoError(t, err)

	assert.Len(t, svc.ListForFaculty("", ""), 2)
	assert.Len(t, svc.ListForFaculty("faculty-1", ""), 1)
	assert.Len(t, svc.ListForFaculty("faculty-2", ""), 2)
	assert.Len(t, svc.ListForFaculty("faculty-9", ""), 0)

	_, err = svc.UpdateStatus(context.Background(), first.ID, models.SwapRejected)
	require.NoError(t, err)

	assert.Len(t, svc.ListForFaculty("faculty-2", models.SwapPending), 1)
	assert.Len(t, svc.ListForFaculty("faculty-2", models.SwapRejected), 1)
}

func TestSwapAcceptTransferMovesSlot(t *testing.T) {
	st := seedSwapStore()
	svc := newTestSwapService(st)

	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.SwapAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.SwapAccepted, updated.Status)

	from, _ := st.FacultyTimetable("faculty-1")
	to, _ := st.FacultyTimetable("faculty-2")
	assert.Len(t, from, 0)
	assert.Len(t, to, 2)
}

func TestSwapAcceptExchangeSwapsSlots(t *testing.T) {
	st := seedSwapStore()
	svc := newTestSwapService(st)

	proposed := models.TimeSlot{Day: "TUESDAY", Time: "1:00-2:00", Subject: "OS"}
	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
		ProposedTimeSlot:    &proposed,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, models.SwapAccepted)
	require.NoError(t, err)

	from, _ := st.FacultyTimetable("faculty-1")
	to, _ := st.FacultyTimetable("faculty-2")
	require.Len(t, from, 1)
	require.Len(t, to, 1)
	assert.Equal(t, "OS", from[0].Subject)
	assert.Equal(t, "DM", to[0].Subject)
}

func TestSwapAcceptWithStaleSlotStillTransitions(t *testing.T) {
	st := seedSwapStore()
	svc := newTestSwapService(st)

	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "FRIDAY", Time: "9:00-10:00", Subject: "GONE"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.SwapAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.SwapAccepted, updated.Status)

	from, _ := st.FacultyTimetable("faculty-1")
	to, _ := st.FacultyTimetable("faculty-2")
	assert.Len(t, from, 1)
	assert.Len(t, to, 1)
}

func TestSwapRejectLeavesTimetablesUntouched(t *testing.T) {
	st := seedSwapStore()
	svc := newTestSwapService(st)

	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.SwapRejected)
	require.NoError(t, err)
	assert.Equal(t, models.SwapRejected, updated.Status)

	from, _ := st.FacultyTimetable("faculty-1")
	assert.Len(t, from, 1)
}

func TestSwapDecidedRequestsAreFinal(t *testing.T) {
	st := seedSwapStore()
	svc := newTestSwapService(st)

	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, models.SwapRejected)
	require.NoError(t, err)

	// Accepting after a rejection changes nothing, including the store.
	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.SwapAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.SwapRejected, updated.Status)

	from, _ := st.FacultyTimetable("faculty-1")
	assert.Len(t, from, 1)
}

func TestSwapUpdateStatusValidation(t *testing.T) {
	svc := newTestSwapService(seedSwapStore())

	_, err := svc.UpdateStatus(context.Background(), "swap-1", models.SwapPending)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.UpdateStatus(context.Background(), "swap-missing", models.SwapAccepted)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSwapGetReturnsCopy(t *testing.T) {
	svc := newTestSwapService(seedSwapStore())

	created, err := svc.Create(dto.CreateSwapRequest{
		RequestingFacultyID: "faculty-1",
		RequestedFacultyID:  "faculty-2",
		TimeSlot:            models.TimeSlot{Day: "MONDAY", Time: "9:00-10:00", Subject: "DM"},
	})
	require.NoError(t, err)

	got := svc.Get(created.ID)
	require.NotNil(t, got)
	got.Status = models.SwapAccepted

	again := svc.Get(created.ID)
	assert.Equal(t, models.SwapPending, again.Status)

	assert.Nil(t, svc.Get("swap-missing"))
}
