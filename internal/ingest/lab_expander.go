package ingest

import "github.com/acadsync/faculty-portal-api/internal/models"

// maxLabHours caps how many consecutive hours a single lab block may occupy.
const maxLabHours = 3

// ExpandSlot turns one cell assignment into the slot records it occupies for
// a single faculty member.
//
// Regular classes map to exactly one record at the start time. Labs span up
// to three consecutive grid slots starting at the cell's time; a lab starting
// near the grid end is shortened rather than wrapped, so a lab in the last
// slot degenerates to a one-hour block. A lab whose start time is not on the
// grid produces no records.
func ExpandSlot(day, startTime, subject, class string, isLab bool) []models.TimeSlot {
	if !isLab {
		return []models.TimeSlot{{
			Day:     day,
			Time:    startTime,
			Subject: subject,
			Class:   class,
		}}
	}

	start := GridIndex(startTime)
	if start < 0 {
		return nil
	}

	hours := maxLabHours
	if remaining := len(TimeGrid) - start; remaining < hours {
		hours = remaining
	}

	slots := make([]models.TimeSlot, 0, hours)
	for hour := 0; hour < hours; hour++ {
		slots = append(slots, models.TimeSlot{
			Day:           day,
			Time:          TimeGrid[start+hour],
			Subject:       subject,
			Class:         class,
			IsLab:         true,
			LabHour:       hour + 1,
			TotalLabHours: hours,
		})
	}
	return slots
}
