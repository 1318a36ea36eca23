package models

// TimeSlot is one owned cell of a faculty member's weekly timetable. Lab
// blocks produce one TimeSlot per occupied hour, with LabHour counting the
// position inside the block.
type TimeSlot struct {
	Day           string `json:"day"`
	Time          string `json:"time"`
	Subject       string `json:"subject"`
	Class         string `json:"class"`
	IsLab         bool   `json:"isLab"`
	LabHour       int    `json:"labHour,omitempty"`
	TotalLabHours int    `json:"totalLabHours,omitempty"`
}

// SameCell reports whether two slots refer to the same schedule cell. Swap
// resolution matches slots by day, time and subject only.
func (s TimeSlot) SameCell(other TimeSlot) bool {
	return s.Day == other.Day && s.Time == other.Time && s.Subject == other.Subject
}

// Faculty is the faculty-centric record derived during ingestion. Name is the
// sole identity key within one ingestion run; IDs, emails and passwords are
// regenerated on every upload.
type Faculty struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Subjects  []string   `json:"subjects"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Clone returns a deep copy so callers cannot mutate store state.
func (f Faculty) Clone() Faculty {
	out := f
	out.Subjects = append([]string(nil), f.Subjects...)
	out.TimeSlots = append([]TimeSlot(nil), f.TimeSlots...)
	return out
}

// SlotAssignment is one raw day/time cell of a class timetable as uploaded.
type SlotAssignment struct {
	Subject string `json:"subject"`
	Faculty string `json:"faculty"`
}

// Class is a class-centric weekly schedule as ingested, immutable afterwards.
type Class struct {
	Name      string                               `json:"name"`
	Timetable map[string]map[string]SlotAssignment `json:"timetable"`
}

// Clone deep-copies the timetable map.
func (c Class) Clone() Class {
	out := Class{Name: c.Name, Timetable: make(map[string]map[string]SlotAssignment, len(c.Timetable))}
	for day, slots := range c.Timetable {
		daySlots := make(map[string]SlotAssignment, len(slots))
		for t, a := range slots {
			daySlots[t] = a
		}
		out.Timetable[day] = daySlots
	}
	return out
}
