package models

import "time"

// SwapStatus is the state of a swap request. Transitions out of pending are
// terminal.
type SwapStatus string

const (
	SwapPending  SwapStatus = "pending"
	SwapAccepted SwapStatus = "accepted"
	SwapRejected SwapStatus = "rejected"
)

// Valid reports whether the value is one of the known states.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapPending, SwapAccepted, SwapRejected:
		return true
	}
	return false
}

// SwapRequest records a faculty member's offer to give up one of their slots,
// optionally in exchange for one of the target's slots.
type SwapRequest struct {
	ID                  string     `json:"id"`
	RequestingFacultyID string     `json:"requestingFacultyId"`
	RequestedFacultyID  string     `json:"requestedFacultyId"`
	TimeSlot            TimeSlot   `json:"timeSlot"`
	ProposedTimeSlot    *TimeSlot  `json:"proposedTimeSlot,omitempty"`
	Reason              string     `json:"reason"`
	Status              SwapStatus `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// Clone copies the request including the optional proposed slot.
func (r SwapRequest) Clone() SwapRequest {
	out := r
	if r.ProposedTimeSlot != nil {
		proposed := *r.ProposedTimeSlot
		out.ProposedTimeSlot = &proposed
	}
	return out
}

// Involves reports whether the faculty is either party of the request.
func (r SwapRequest) Involves(facultyID string) bool {
	return r.RequestingFacultyID == facultyID || r.RequestedFacultyID == facultyID
}
