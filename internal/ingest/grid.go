package ingest

// Days are the canonical day keys of an uploaded timetable, in week order.
var Days = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}

// TimeGrid is the fixed ordered list of daily time slots. Lab blocks are
// bounded by the grid end, so nothing runs past 4pm.
var TimeGrid = []string{
	"9:00-10:00",
	"10:00-11:00",
	"11:10-12:10",
	"1:00-2:00",
	"2:00-3:00",
	"3:00-4:00",
}

// GridIndex returns the position of the time label in the grid, -1 if absent.
// Lookups require an exact string match.
func GridIndex(time string) int {
	for i, label := range TimeGrid {
		if label == time {
			return i
		}
	}
	return -1
}
