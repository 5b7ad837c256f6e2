package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Schedule Builder API",
        "description": "Course schedule combination engine over the public class schedule catalog",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedules", "description": "Schedule generation and export"},
        {"name": "Catalog", "description": "Stored catalog lookups and refresh"}
    ],
    "paths": {
        "/schedules/generate": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Generate conflict-free schedules for a course selection",
                "parameters": [
                    {"name": "term", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateSchedulesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "No sections or missing meeting type", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/fingerprint": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Compute the result fingerprint for a selection without generating",
                "parameters": [
                    {"name": "term", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateSchedulesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{fingerprint}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Fetch a previously generated result by fingerprint",
                "parameters": [
                    {"name": "fingerprint", "in": "path", "required": true, "type": "string"},
                    {"name": "term", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not cached", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/export": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Export a chosen schedule as PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportScheduleRequest"}}
                ],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/term": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Report the term the catalog currently serves",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "description": "Override date, YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List selectable courses for a term",
                "parameters": [
                    {"name": "term", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List instructor names for a term",
                "parameters": [
                    {"name": "term", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/refresh": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Start a background catalog refresh",
                "parameters": [
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/RefreshRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Refresh already in progress", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/refresh/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Report the progress of a catalog refresh",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown job", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "GenerateSchedulesRequest": {
            "type": "object",
            "properties": {
                "courses": {"type": "array", "items": {"type": "string"}},
                "excluded_instructors": {"type": "array", "items": {"type": "string"}},
                "excluded_time_ranges": {"type": "array", "items": {"type": "string"}},
                "excluded_days": {"type": "array", "items": {"type": "string"}},
                "excluded_custom_slots": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CustomSlot"}
                },
                "page": {"type": "integer"}
            },
            "required": ["courses"]
        },
        "CustomSlot": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            },
            "required": ["day", "start", "end"]
        },
        "ExportScheduleRequest": {
            "type": "object",
            "properties": {
                "term": {"type": "string"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/RenderedSection"}}
            },
            "required": ["term", "schedule"]
        },
        "RefreshRequest": {
            "type": "object",
            "properties": {
                "term": {"type": "string"}
            }
        },
        "RenderedSection": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "course_title": {"type": "string"},
                "units": {"type": "string"},
                "section_id": {"type": "string"},
                "meeting_type": {"type": "string"},
                "days": {"type": "array", "items": {"type": "string"}},
                "times": {"type": "string"},
                "location": {"type": "string"},
                "instructor": {"type": "string"},
                "rating": {"$ref": "#/definitions/InstructorRating"}
            }
        },
        "InstructorRating": {
            "type": "object",
            "properties": {
                "instructor": {"type": "string"},
                "score": {"type": "number"},
                "count": {"type": "integer"},
                "source": {"type": "string"}
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
