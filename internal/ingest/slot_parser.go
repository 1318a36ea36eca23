package ingest

import "strings"

const labMarker = "LAB"

var batchTags = []string{"(B1)", "(B2)"}

// SubAssignment is one subject/faculty pairing extracted from a single
// timetable cell. A split-lab cell yields several, a plain cell exactly one.
type SubAssignment struct {
	Subject string
	Faculty string
}

// ParseSlot breaks one day/time cell into its sub-assignments.
//
// A cell whose subject text contains both "/" and "LAB" denotes a split lab:
// two or more parallel lab sections sharing the time. The subject text is
// split on "/", the faculty list on ",", and faculty are distributed over the
// sections in contiguous groups of floor(count/sections). Faculty beyond
// sections*floor(count/sections) are dropped; that is the established policy,
// not an accident.
func ParseSlot(subjectText, facultyText string) []SubAssignment {
	if !strings.Contains(subjectText, "/") || !strings.Contains(subjectText, labMarker) {
		return []SubAssignment{{Subject: subjectText, Faculty: facultyText}}
	}

	subjects := splitAndTrim(subjectText, "/")
	names := splitAndTrim(facultyText, ",")
	perSection := len(names) / len(subjects)

	out := make([]SubAssignment, 0, len(subjects))
	for i, subject := range subjects {
		start := i * perSection
		end := start + perSection
		if end > len(names) {
			end = len(names)
		}
		group := ""
		if start < end {
			group = strings.Join(names[start:end], ", ")
		}
		out = append(out, SubAssignment{Subject: subject, Faculty: group})
	}
	return out
}

// IsLab classifies a subject text; anything containing "LAB" is a lab.
// Classification happens before batch-tag normalization.
func IsLab(subject string) bool {
	return strings.Contains(subject, labMarker)
}

// ExtractBatchTag pulls a "(B1)"/"(B2)" marker out of the subject text. It
// returns the remaining base subject and the tag, or the unchanged subject
// and "" when no tag is present. When stripping the tag leaves a dangling
// trailing "LAB" word, that word is removed too: the lab flag on the slot
// record already carries that information.
func ExtractBatchTag(subject string) (string, string) {
	for _, tag := range batchTags {
		if !strings.Contains(subject, tag) {
			continue
		}
		base := strings.TrimSpace(strings.ReplaceAll(subject, tag, ""))
		if trimmed, ok := strings.CutSuffix(base, labMarker); ok {
			base = strings.TrimSpace(trimmed)
		}
		return base, tag
	}
	return subject, ""
}

// NormalizeSubject applies batch-tag extraction and re-appends the tag to the
// base subject, so "OOPJ LAB(B1)" is recorded as "OOPJ(B1)". Subjects without
// a tag pass through verbatim.
func NormalizeSubject(subject string) string {
	base, tag := ExtractBatchTag(subject)
	if tag == "" {
		return subject
	}
	return base + tag
}

// SplitFacultyNames splits a comma-joined faculty field into trimmed,
// non-empty display names.
func SplitFacultyNames(facultyText string) []string {
	if facultyText == "" {
		return nil
	}
	parts := strings.Split(facultyText, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func splitAndTrim(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}
