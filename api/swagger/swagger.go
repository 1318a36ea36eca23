package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Faculty Portal API",
        "description": "Faculty timetable ingestion, queries and period-swap workflow",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Administrator and faculty login"},
        {"name": "Timetable", "description": "Upload and store status"},
        {"name": "Faculties", "description": "Faculty roster and weekly timetables"},
        {"name": "Swaps", "description": "Period-swap request workflow"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate an administrator or faculty member",
                "responses": {
                    "200": {"description": "Access token and user info"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/admin/timetable/upload": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Ingest an uploaded timetable document",
                "responses": {
                    "200": {"description": "Ingestion summary"},
                    "400": {"description": "Malformed document, store unchanged"}
                }
            }
        },
        "/admin/audit/ingestions": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List recent ingestion audit records",
                "responses": {
                    "200": {"description": "Most recent uploads, newest first"}
                }
            }
        },
        "/timetable/status": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Report whether a timetable has been loaded",
                "responses": {
                    "200": {"description": "Loaded flag and collection sizes"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List ingested class schedules",
                "responses": {
                    "200": {"description": "Class schedules as ingested"}
                }
            }
        },
        "/faculties": {
            "get": {
                "tags": ["Faculties"],
                "summary": "List faculty records",
                "responses": {
                    "200": {"description": "Faculty records in first-seen order"}
                }
            }
        },
        "/faculties/{id}": {
            "get": {
                "tags": ["Faculties"],
                "summary": "Get faculty by id",
                "responses": {
                    "200": {"description": "Faculty record"},
                    "404": {"description": "Unknown faculty"}
                }
            }
        },
        "/faculties/{id}/timetable": {
            "get": {
                "tags": ["Faculties"],
                "summary": "Get a faculty member's weekly timetable",
                "responses": {
                    "200": {"description": "Ordered slot records"},
                    "404": {"description": "Unknown faculty"}
                }
            }
        },
        "/faculties/{id}/timetable/search": {
            "get": {
                "tags": ["Faculties"],
                "summary": "Search one faculty member's timetable",
                "responses": {
                    "200": {"description": "Matching slots grouped by day"}
                }
            }
        },
        "/faculties/{id}/timetable/export": {
            "get": {
                "tags": ["Faculties"],
                "summary": "Export a timetable as PDF or CSV",
                "responses": {
                    "200": {"description": "Rendered document"}
                }
            }
        },
        "/swaps": {
            "post": {
                "tags": ["Swaps"],
                "summary": "Create a period-swap request",
                "responses": {
                    "201": {"description": "Created request, pending"}
                }
            },
            "get": {
                "tags": ["Swaps"],
                "summary": "List swap requests",
                "responses": {
                    "200": {"description": "Requests involving the faculty"}
                }
            }
        },
        "/swaps/{id}/status": {
            "patch": {
                "tags": ["Swaps"],
                "summary": "Accept or reject a swap request",
                "responses": {
                    "200": {"description": "Updated request"},
                    "404": {"description": "Unknown request id"}
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
