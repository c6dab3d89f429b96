// Package docs registers the OpenAPI document served under /swagger. It is maintained
// by hand from the handler annotations; /items/{item_id} describes both the basic
// (string id) and the secure (integer id, bearer token) operation.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Greeting",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/auth/google": {
            "post": {
                "description": "Verifies a Google ID token and exchanges it for an API access token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with Google",
                "parameters": [
                    {"description": "Google ID token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GoogleAuthRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "400": {"description": "Invalid token or no email resolved", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}},
                    "503": {"description": "Google sign-in not configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the service is up and running",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/item/{item_id}": {
            "put": {
                "description": "Validates the item and echoes it with its id. The q query parameter is accepted but not echoed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Update an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "item_id", "in": "path", "required": true},
                    {"type": "string", "description": "Free-form query", "name": "q", "in": "query"},
                    {"description": "Item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UpdateItemResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            }
        },
        "/items/": {
            "get": {
                "description": "Returns the [skip, skip+limit) window of the fixed demo list.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List demo items",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Items to skip", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items to return", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FakeItem"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            },
            "post": {
                "description": "Validates the item and echoes it, adding price_with_tax when tax is set.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create an item",
                "parameters": [
                    {"description": "Item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItemResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            }
        },
        "/items/{item_id}": {
            "get": {
                "description": "Returns the path parameter. The basic variant echoes it as a string; the secure variant requires a non-negative integer and a bearer token.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Read an item id",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReadItemResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Echoes the item with its id, plus q when q is non-empty.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["secure-items"],
                "summary": "Update an item",
                "parameters": [
                    {"minimum": 0, "type": "integer", "description": "Item ID", "name": "item_id", "in": "path", "required": true},
                    {"type": "string", "description": "Free-form query", "name": "q", "in": "query"},
                    {"description": "Item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UpdateItemResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Accepts username and password form fields and echoes the username.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in with a form",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.GoogleAuthRequest": {
            "type": "object",
            "required": ["id_token"],
            "properties": {"id_token": {"type": "string"}}
        },
        "dto.ItemRequest": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string", "minLength": 1},
                "description": {"type": "string", "maxLength": 300},
                "price": {"type": "number"},
                "tax": {"type": "number"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.ItemResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "tax": {"type": "number"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "price_with_tax": {"type": "number"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"username": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.ReadItemResponse": {
            "type": "object",
            "properties": {"item_id": {"type": "string"}}
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "dto.UpdateItemResponse": {
            "type": "object",
            "properties": {
                "item_id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "tax": {"type": "number"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "q": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        },
        "models.FakeItem": {
            "type": "object",
            "properties": {"item_name": {"type": "string"}}
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "location": {"type": "string"},
                "field": {"type": "string"},
                "constraint": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Item API",
	Description:      "Item validation and echo endpoints with optional Google sign-in.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
