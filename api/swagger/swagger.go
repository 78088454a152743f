package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Clash Detector API",
        "description": "Detects teacher, room and year clashes in uploaded timetables and suggests fixes",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Detection", "description": "Timetable upload and clash detection"},
        {"name": "Suggestions", "description": "Clash remediation"},
        {"name": "Analytics", "description": "Clash breakdowns for dashboards"},
        {"name": "Runs", "description": "Stored analysis runs"},
        {"name": "Reports", "description": "Asynchronous clash report exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unavailable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/detect/upload": {
            "post": {
                "tags": ["Detection"],
                "summary": "Upload a timetable and detect clashes",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true, "description": "CSV, XLSX or XLS timetable"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DetectResponse"}},
                    "400": {"description": "Missing or unreadable file", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/suggest/fix": {
            "post": {
                "tags": ["Suggestions"],
                "summary": "Suggest fixes for detected clashes",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SuggestFixRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuggestFixResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Run not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/analytics/clashes": {
            "post": {
                "tags": ["Analytics"],
                "summary": "Summarise an arbitrary clash list",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClashAnalyticsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/metrics/system": {
            "get": {
                "summary": "Process and request counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/runs": {
            "get": {
                "tags": ["Runs"],
                "summary": "List analysis runs",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"},
                    {"name": "sort_order", "in": "query", "type": "string", "enum": ["asc", "desc"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Run history disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/runs/{id}": {
            "get": {
                "tags": ["Runs"],
                "summary": "Get a run with entries, clashes and suggestions",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/runs/{id}/resolve": {
            "post": {
                "tags": ["Runs"],
                "summary": "Resolve a stored run and persist its suggestions",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/runs/{id}/analytics": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Clash analytics for a stored run",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/runs/{id}/reports": {
            "post": {
                "tags": ["Reports"],
                "summary": "Queue a clash report export",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateReportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Run not found or reports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/reports/{id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report job status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/reports/download/{token}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a finished report through its signed token",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "token", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Report file"},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Entry": {
            "type": "object",
            "properties": {
                "course": {"type": "string"},
                "teacher": {"type": "string"},
                "year": {"type": "string"},
                "room": {"type": "string"},
                "day": {"type": "string"},
                "start": {"type": "string", "example": "09:00"},
                "end": {"type": "string", "example": "10:00"},
                "resource": {"type": "string"},
                "startMin": {"type": "integer"},
                "endMin": {"type": "integer"}
            }
        },
        "Clash": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["Teacher Clash", "Room Clash", "Year Clash"]},
                "day": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/Entry"}}
            }
        },
        "Suggestion": {
            "type": "object",
            "properties": {
                "clashType": {"type": "string"},
                "issue": {"type": "string"},
                "fix": {"type": "string"},
                "confidence": {"type": "number"},
                "action": {"type": "string", "enum": ["ROOM_CHANGE", "RESCHEDULE", "SWAP", "MANUAL"]},
                "targetCourse": {"type": "string"},
                "room": {"type": "string"},
                "day": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "swapWith": {"type": "string"}
            }
        },
        "DetectResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "totalEntries": {"type": "integer"},
                "timetable": {"type": "array", "items": {"$ref": "#/definitions/Entry"}},
                "clashes": {"type": "array", "items": {"$ref": "#/definitions/Clash"}},
                "runId": {"type": "string"}
            }
        },
        "SuggestFixRequest": {
            "type": "object",
            "required": ["timetable", "clashes"],
            "properties": {
                "timetable": {"type": "array", "items": {"$ref": "#/definitions/Entry"}},
                "clashes": {"type": "array", "items": {"$ref": "#/definitions/Clash"}},
                "runId": {"type": "string", "format": "uuid"}
            }
        },
        "SuggestFixResponse": {
            "type": "object",
            "properties": {
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/Suggestion"}}
            }
        },
        "ClashAnalyticsRequest": {
            "type": "object",
            "required": ["clashes"],
            "properties": {
                "clashes": {"type": "array", "items": {"$ref": "#/definitions/Clash"}}
            }
        },
        "CreateReportRequest": {
            "type": "object",
            "required": ["format"],
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf", "xlsx"]}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
