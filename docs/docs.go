// Package docs registers the OpenAPI document served by gin-swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/resume": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "List resumes",
                "description": "Applicants see their own resumes, recruiters see all",
                "parameters": [
                    {"type": "string", "description": "asc or desc by creation time (default desc)", "name": "sort", "in": "query"},
                    {"type": "string", "description": "Status filter, comma separated", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Create resume",
                "parameters": [
                    {"description": "Resume", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CreateResumeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.ResumeSummary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/resume/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Get resume",
                "parameters": [{"type": "integer", "description": "Resume ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Resume"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Update resume",
                "parameters": [
                    {"type": "integer", "description": "Resume ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UpdateResumeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Resume"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Delete resume",
                "parameters": [{"type": "integer", "description": "Resume ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DeleteResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/resume/recruiter/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["recruiter"],
                "summary": "List status logs",
                "parameters": [{"type": "integer", "description": "Resume ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ResumeStatusLog"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recruiter"],
                "summary": "Change resume status",
                "parameters": [
                    {"type": "integer", "description": "Resume ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.ChangeStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ResumeStatusLog"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/resume/recruiter/{id}/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/csv"],
                "tags": ["recruiter"],
                "summary": "Export status logs",
                "parameters": [
                    {"type": "integer", "description": "Resume ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "xlsx (default) or csv", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "requestId": {"type": "string"}
            }
        },
        "domain.Resume": {
            "type": "object",
            "properties": {
                "resumeId": {"type": "integer"},
                "userId": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "status": {"type": "string", "enum": ["APPLY", "DROP", "INTERVIEW1", "INTERVIEW2", "FINAL_PASS"]},
                "name": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.ResumeSummary": {
            "type": "object",
            "properties": {
                "resumeId": {"type": "integer"},
                "title": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.ResumeStatusLog": {
            "type": "object",
            "properties": {
                "logId": {"type": "integer"},
                "resumeId": {"type": "integer"},
                "recruiterId": {"type": "string"},
                "recruiterName": {"type": "string"},
                "previousStatus": {"type": "string"},
                "status": {"type": "string"},
                "reason": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "domain.DeleteResult": {
            "type": "object",
            "properties": {"userId": {"type": "string"}}
        },
        "v1.CreateResumeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Backend Engineer"},
                "content": {"type": "string"}
            }
        },
        "v1.UpdateResumeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "v1.ChangeStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "INTERVIEW1"},
                "reason": {"type": "string", "example": "Strong portfolio"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Resume Review API",
	Description:      "Resume management and recruiter review backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
