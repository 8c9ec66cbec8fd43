// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/reminders/preview": {
            "post": {
                "description": "Masks raw date/time keystrokes and reports whether each is valid.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reminder"],
                "summary": "Preview reminder date and time",
                "parameters": [
                    {"description": "Raw input", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/reminder.previewReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/reminders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reminder"],
                "summary": "List reminders",
                "parameters": [
                    {"type": "string", "description": "Recipient email", "name": "email", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Backend unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Validates the reminder form and sends it to the VieGrand backend.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reminder"],
                "summary": "Create a reminder",
                "parameters": [
                    {"description": "Reminder form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/reminder.createReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Validation error, message is user-facing", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Backend unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/reminders/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Reminder"],
                "summary": "Delete a reminder",
                "parameters": [
                    {"type": "integer", "description": "Reminder ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/premium/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Premium"],
                "summary": "Premium subscription status",
                "parameters": [
                    {"type": "string", "description": "Account email, defaults to the caller", "name": "email", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "No subscription", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/family/qr/resolve": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Family"],
                "summary": "Resolve a family QR code",
                "parameters": [
                    {"description": "Scanned QR text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/family.resolveQRReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Invalid QR", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Unknown key", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/family/members": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Family"],
                "summary": "Link a family member",
                "parameters": [
                    {"description": "Scanned QR text and optional relative email", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/family.addMemberReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Invalid QR or missing email", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Unknown key", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Already linked", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/family/members/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Family"],
                "summary": "Unlink a family member",
                "parameters": [
                    {"type": "integer", "description": "Family member id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Unknown member", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/vitals/bmi": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Vitals"],
                "summary": "Calculate BMI",
                "parameters": [
                    {"description": "Height (cm) and weight (kg)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/vitals.bmiReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}
        },
        "/live": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "reminder.previewReq": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "05032025"},
                "time": {"type": "string", "example": "0830"}
            }
        },
        "reminder.createReq": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "05/03/2025"},
                "time": {"type": "string", "example": "08:30"},
                "content": {"type": "string"},
                "recipient_email": {"type": "string"},
                "recipient_name": {"type": "string"},
                "recipient_private_key": {"type": "string"}
            }
        },
        "family.resolveQRReq": {
            "type": "object",
            "required": ["data"],
            "properties": {
                "data": {"type": "string"}
            }
        },
        "family.addMemberReq": {
            "type": "object",
            "required": ["data"],
            "properties": {
                "data": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "vitals.bmiReq": {
            "type": "object",
            "properties": {
                "height_cm": {"type": "number"},
                "weight_kg": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "VieGrand Care API",
	Description:      "Reminder, premium, family linking and vitals endpoints for the VieGrand app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
