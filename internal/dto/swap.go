package dto

import "github.com/acadsync/faculty-portal-api/internal/models"

// CreateSwapRequest is the payload for opening a swap request. The slot being
// given up is not validated against the requester's timetable; approval is
// where conflicts surface.
type CreateSwapRequest struct {
	RequestingFacultyID string           `json:"requestingFacultyId" validate:"required"`
	RequestedFacultyID  string           `json:"requestedFacultyId" validate:"required"`
	TimeSlot            models.TimeSlot  `json:"timeSlot" validate:"required"`
	ProposedTimeSlot    *models.TimeSlot `json:"proposedTimeSlot"`
	Reason              string           `json:"reason"`
}

// UpdateSwapStatusRequest carries the accept/reject decision.
type UpdateSwapStatusRequest struct {
	Status models.SwapStatus `json:"status" validate:"required"`
}
