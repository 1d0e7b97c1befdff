// Package docs registers the OpenAPI document served under /swagger/.
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
		"/api/register": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Register a user and start a session",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/login": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Log in and start a session",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/logout": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "End the current session",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/user": {
			"get": {
				"tags": [
					"Users"
				],
				"summary": "Get the current user",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/user/profile": {
			"put": {
				"tags": [
					"Users"
				],
				"summary": "Update the current user's profile",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/user/events": {
			"get": {
				"tags": [
					"Attendees"
				],
				"summary": "List events the current user registered for",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/user/saved-organizations": {
			"get": {
				"tags": [
					"Organizations"
				],
				"summary": "List organizations the current user saved",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/organizations": {
			"get": {
				"tags": [
					"Organizations"
				],
				"summary": "List organizations",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/organizations/{id}": {
			"get": {
				"tags": [
					"Organizations"
				],
				"summary": "Get an organization",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Organizations"
				],
				"summary": "Update an organization",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/organizations/{id}/events": {
			"get": {
				"tags": [
					"Organizations"
				],
				"summary": "List an organization's events",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/organizations/{id}/saved": {
			"get": {
				"tags": [
					"Organizations"
				],
				"summary": "Report whether the current user saved an organization",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/organizations/{id}/save": {
			"post": {
				"tags": [
					"Organizations"
				],
				"summary": "Save an organization",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/organizations/{id}/unsave": {
			"delete": {
				"tags": [
					"Organizations"
				],
				"summary": "Unsave an organization",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/events": {
			"get": {
				"tags": [
					"Events"
				],
				"summary": "List events",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"Events"
				],
				"summary": "Create an event",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/events/{id}": {
			"get": {
				"tags": [
					"Events"
				],
				"summary": "Get an event",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Events"
				],
				"summary": "Update an event",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			},
			"delete": {
				"tags": [
					"Events"
				],
				"summary": "Delete an event",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/events/{id}/register": {
			"post": {
				"tags": [
					"Attendees"
				],
				"summary": "Register for an event",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/api/events/{id}/participants": {
			"get": {
				"tags": [
					"Attendees"
				],
				"summary": "List an event's participants",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/events/{id}/participants/{userId}/attend": {
			"post": {
				"tags": [
					"Attendees"
				],
				"summary": "Mark a participant as attended",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		}
	},
	"securityDefinitions": {
		"SessionCookie": {
			"type": "apiKey",
			"name": "sid",
			"in": "cookie"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Community Hub API",
	Description:      "Users, organizations, events and participation for a community engagement platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
