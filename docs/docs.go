// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Create an editing session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Session state"}, "400": {"description": "Invalid input"}}
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "tags": ["sessions"],
                "summary": "Get a session",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Session state"}, "404": {"description": "Session not found"}}
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Delete a session",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Session not found"}}
            }
        },
        "/sessions/{sessionID}/matches/{matchID}": {
            "put": {
                "tags": ["matches"],
                "summary": "Update a match",
                "parameters": [
                    {"type": "string", "name": "sessionID", "in": "path", "required": true},
                    {"type": "string", "name": "matchID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "Session state"}, "400": {"description": "Invalid input"}, "404": {"description": "Not found"}, "409": {"description": "Match is missing a team"}}
            }
        },
        "/sessions/{sessionID}/size": {
            "post": {
                "tags": ["sessions"],
                "summary": "Change the bracket size",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Session state"}, "400": {"description": "Unsupported size"}}
            }
        },
        "/sessions/{sessionID}/teams": {
            "post": {
                "tags": ["teams"],
                "summary": "Add a team",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"201": {"description": "Session state"}, "400": {"description": "Invalid input or roster full"}}
            }
        },
        "/sessions/{sessionID}/import": {
            "post": {
                "tags": ["sessions"],
                "summary": "Import a bracket snapshot",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Session state"}, "422": {"description": "Invalid snapshot"}}
            }
        },
        "/sessions/{sessionID}/export": {
            "get": {
                "tags": ["sessions"],
                "summary": "Export a bracket snapshot",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Snapshot"}}
            }
        },
        "/sessions/{sessionID}/archive": {
            "post": {
                "tags": ["archives"],
                "summary": "Archive a session",
                "parameters": [{"type": "string", "name": "sessionID", "in": "path", "required": true}],
                "responses": {"201": {"description": "Archive"}, "503": {"description": "Archive not configured"}}
            }
        },
        "/archives/{archiveID}": {
            "get": {
                "tags": ["archives"],
                "summary": "Get an archived snapshot",
                "parameters": [{"type": "string", "name": "archiveID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Archive"}, "404": {"description": "Archive not found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bracket Editor API",
	Description:      "Double-elimination bracket editing sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
