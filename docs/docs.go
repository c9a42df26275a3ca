// Package docs holds the Swagger 2.0 document served at /swagger/*any.
//
// The document is kept by hand in step with the swag annotations on cmd/api and
// internal/handler.
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
        "/geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Search addresses",
                "parameters": [
                    {"type": "string", "description": "address text, e.g. 東京都千代田区丸の内", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Location"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/latlng/deg": {
            "get": {
                "produces": ["application/json"],
                "tags": ["latlng"],
                "summary": "Convert DMM to decimal degrees",
                "parameters": [
                    {"type": "number", "description": "degrees and decimal minutes, e.g. 3540.85815", "name": "dmm", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ConversionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/latlng/dmm": {
            "get": {
                "produces": ["application/json"],
                "tags": ["latlng"],
                "summary": "Convert decimal degrees to DMM",
                "parameters": [
                    {"type": "number", "description": "decimal degrees", "name": "deg", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ConversionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/latlng/parse": {
            "get": {
                "produces": ["application/json"],
                "tags": ["latlng"],
                "summary": "Parse coordinate text",
                "parameters": [
                    {"type": "string", "description": "coordinate text, e.g. 36.2,N,138.6,E or 3507.2,13522.2", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ParseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/reverse-geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocoding"],
                "summary": "Nearest address to a coordinate",
                "parameters": [
                    {"type": "string", "description": "coordinate text, e.g. 3540.858,N,13945.960,E", "name": "q", "in": "query"},
                    {"type": "string", "description": "latitude", "name": "lat", "in": "query"},
                    {"type": "string", "description": "longitude", "name": "lon", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Location"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ConversionResponse": {
            "type": "object",
            "properties": {
                "deg": {"type": "number"},
                "dmm": {"type": "number"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.ParseResponse": {
            "type": "object",
            "properties": {
                "deg": {"type": "string"},
                "dmm": {"type": "string"},
                "format": {"type": "string", "enum": ["deg", "dmm"]},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "models.Location": {
            "type": "object",
            "properties": {
                "address1": {"type": "string"},
                "address2": {"type": "string"},
                "block_lot": {"type": "string"},
                "id": {"type": "integer"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "municipality": {"type": "string"},
                "prefecture": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "latlng-api",
	Description:      "Coordinate field parsing and geocoding for Japanese addresses",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
