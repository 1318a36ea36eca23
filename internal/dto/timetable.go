package dto

import "encoding/json"

// UploadTimetableRequest is the admin upload payload. Classes stays raw so
// the ingestion engine can reject a malformed value wholesale.
type UploadTimetableRequest struct {
	Classes json.RawMessage `json:"classes"`
}

// IngestSummary reports what one successful ingestion produced.
type IngestSummary struct {
	FacultyCount int `json:"faculty_count"`
	ClassCount   int `json:"class_count"`
}

// TimetableStatus describes the current store state.
type TimetableStatus struct {
	Loaded       bool `json:"loaded"`
	FacultyCount int  `json:"faculty_count"`
	ClassCount   int  `json:"class_count"`
}
