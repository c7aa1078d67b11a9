// Package docs serves the OpenAPI description of the habitpal API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/habits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "List the predefined habit catalog",
                "parameters": [
                    {"type": "string", "description": "Only habits of this category", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/habits/selected": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Current habit selection",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Replace the habit selection (max 5)",
                "parameters": [
                    {"description": "Habit IDs", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateSelectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/habits/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Look up one catalog habit",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/progress/today": {
            "get": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Today's completion state and 7-day history",
                "parameters": [
                    {"type": "string", "description": "Comma-separated habit IDs (default: current selection)", "name": "habit_ids", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitProgress"}}}
                }
            }
        },
        "/progress/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Completion count and percentage for today",
                "parameters": [
                    {"type": "string", "description": "Comma-separated habit IDs (default: current selection)", "name": "habit_ids", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DailyStats"}}
                }
            }
        },
        "/progress/{habitId}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Flip today's completion flag of a habit",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "habitId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.toggleResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/progress/reset": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Clear today's progress",
                "parameters": [
                    {"description": "Habit IDs (default: current selection)", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.resetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.resetResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/stats/weekly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Seven-day report with streaks",
                "parameters": [
                    {"type": "string", "description": "Comma-separated habit IDs (default: current selection)", "name": "habit_ids", "in": "query"},
                    {"type": "string", "description": "Last day of the window, YYYY-MM-DD (default: today)", "name": "end_date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WeeklyStats"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Habit": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "icon": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "domain.HabitProgress": {
            "type": "object",
            "properties": {
                "habitId": {"type": "string"},
                "completedToday": {"type": "boolean"},
                "history": {"type": "array", "items": {"type": "boolean"}}
            }
        },
        "domain.DailyStats": {
            "type": "object",
            "properties": {
                "completed": {"type": "integer"},
                "total": {"type": "integer"},
                "percentage": {"type": "integer"},
                "allCompleted": {"type": "boolean"}
            }
        },
        "domain.HabitStat": {
            "type": "object",
            "properties": {
                "habit_id": {"type": "string"},
                "name": {"type": "string"},
                "icon": {"type": "string"},
                "category": {"type": "string"},
                "days_completed": {"type": "integer"},
                "completion_rate": {"type": "number"},
                "daily_progress": {"type": "array", "items": {"type": "boolean"}},
                "current_streak": {"type": "integer"},
                "longest_streak": {"type": "integer"}
            }
        },
        "domain.WeeklyStats": {
            "type": "object",
            "properties": {
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "total_habits": {"type": "integer"},
                "overall_completion_rate": {"type": "number"},
                "habits": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitStat"}}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.updateSelectionRequest": {
            "type": "object",
            "properties": {
                "habit_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.resetRequest": {
            "type": "object",
            "properties": {
                "habit_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.toggleResponse": {
            "type": "object",
            "properties": {
                "habit_id": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "http.resetResponse": {
            "type": "object",
            "properties": {
                "reset": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "habitpal API",
	Description:      "Daily habit tracking: catalog, selection, progress and weekly stats.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
