package ingest

import "encoding/json"

// sampleJSON is a small demo timetable so the portal can be explored before
// any real document has been uploaded.
const sampleJSON = `[
  {
    "name": "CSE-A",
    "facultyAssignments": [
      {"subject": "DM", "faculty": "Mrs. R. Pallavi Reddy"},
      {"subject": "OOPJ", "faculty": "Dr. T. Divya Kumari"},
      {"subject": "OS", "faculty": "Mrs. R. Mamatha"},
      {"subject": "COA", "faculty": "Mr. Ch. Sudarshan Reddy"},
      {"subject": "SE", "faculty": "Mrs. A. Jyothi"},
      {"subject": "HVPE", "faculty": "Mrs. N. Durga Bhavani"},
      {"subject": "OOPJ LAB", "faculty": "Dr. T. Divya Kumari, Mrs. A. Jyothi"},
      {"subject": "OSMP LAB", "faculty": "Mr. Ch. Sudarshan Reddy, Mrs. R. Mamatha"},
      {"subject": "MP1 LAB", "faculty": "Dr. T. Divya Kumari, Mrs. A. Jyothi"}
    ],
    "timetable": {
      "MONDAY": {
        "9:00-10:00": {"subject": "DM", "faculty": "Mrs. R. Pallavi Reddy"},
        "10:00-11:00": {"subject": "OOPJ", "faculty": "Dr. T. Divya Kumari"},
        "11:10-12:10": {"subject": "Library", "faculty": ""},
        "1:00-2:00": {"subject": "HVPE", "faculty": "Mrs. N. Durga Bhavani"},
        "2:00-3:00": {"subject": "SE", "faculty": "Mrs. A. Jyothi"},
        "3:00-4:00": {"subject": "Sports", "faculty": ""}
      },
      "TUESDAY": {
        "9:00-10:00": {"subject": "OOPJ LAB(B1)/OSMP LAB(B2)", "faculty": "Dr. T. Divya Kumari, Mrs. A. Jyothi, Mr. Ch. Sudarshan Reddy, Mrs. R. Mamatha"},
        "1:00-2:00": {"subject": "OS", "faculty": "Mrs. R. Mamatha"},
        "2:00-3:00": {"subject": "COA", "faculty": "Mr. Ch. Sudarshan Reddy"}
      }
    }
  }
]`

// SampleDocument returns the bundled demo upload.
func SampleDocument() Document {
	return Document{Classes: json.RawMessage(sampleJSON)}
}
