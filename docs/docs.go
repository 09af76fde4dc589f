// Package docs registers the Swagger description of the quote service.
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
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/preview": {
            "post": {"tags": ["quotes"], "summary": "Generate and validate a quote without side effects", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/quotes/validate": {
            "post": {"tags": ["quotes"], "summary": "Validate a quote document", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/validate/source": {
            "post": {"tags": ["quotes"], "summary": "Cross-check a document against its source option", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/quotes/export": {
            "post": {"tags": ["quotes"], "summary": "Export a quote as a JSON file", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/quotes/export/batch": {
            "post": {"tags": ["quotes"], "summary": "Export several quotes as one zip archive", "consumes": ["application/json"], "produces": ["application/zip"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/quotes/email": {
            "post": {"tags": ["quotes"], "summary": "Build the quote email payload", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/quotes/email/send": {
            "post": {"tags": ["quotes"], "summary": "Send the quote email", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/report": {
            "post": {"tags": ["quotes"], "summary": "Statistics and recommendations for a quote", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/{reference}/exports": {
            "get": {"tags": ["exports"], "summary": "List archived exports of a quote reference", "produces": ["application/json"], "parameters": [{"type": "string", "name": "reference", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "501": {"description": "Not Implemented"}}}
        },
        "/exports/{id}": {
            "get": {"tags": ["exports"], "summary": "Download an archived export", "produces": ["application/octet-stream"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/drafts/validate": {
            "post": {"tags": ["drafts"], "summary": "Validate a draft form against its schema", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/drafts/submission-check": {
            "post": {"tags": ["drafts"], "summary": "Check a draft form against the submission rules", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/drafts/resume-token": {
            "post": {"tags": ["drafts"], "summary": "Mint a resume token", "produces": ["application/json"], "responses": {"201": {"description": "Created"}}}
        },
        "/drafts/{resume_token}": {
            "get": {"tags": ["drafts"], "summary": "Load a saved draft", "produces": ["application/json"], "parameters": [{"type": "string", "name": "resume_token", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["drafts"], "summary": "Save the wizard state under a resume token", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "string", "name": "resume_token", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/drafts/{resume_token}/submit": {
            "post": {"tags": ["drafts"], "summary": "Submit a draft quote request", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "string", "name": "resume_token", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Freight Quote Service API",
	Description:      "Quote document generation, validation, export and draft quote requests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
