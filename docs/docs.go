// Package docs registers the OpenAPI document of the chartd HTTP API with
// swag. Regenerate with `swag init -g cmd/chartd/docs.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "chartd maintainers"},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/charts": {"get": {"summary": "List charts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ChartsResponse"}}}}},
        "/charts/{id}": {"delete": {"summary": "Destroy a chart", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/charts/{id}/option": {"get": {"summary": "Current option of a chart", "produces": ["application/json"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/charts/{id}/series": {"put": {"summary": "Update the series of a chart", "consumes": ["application/json"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "not_merge", "in": "query", "type": "boolean"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.UpdateSeriesRequest"}}], "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/charts/{id}/events": {"get": {"summary": "Registered listeners of a chart", "produces": ["application/json"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EventsResponse"}}}}},
        "/charts/{id}/dispatch": {"post": {"summary": "Simulate an interaction event", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.DispatchRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DispatchResponse"}}, "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}},
        "/charts/{id}/resize": {"post": {"summary": "Resize a chart's element", "consumes": ["application/json"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ResizeRequest"}}], "responses": {"204": {"description": "No Content"}}}},
        "/groups": {"post": {"summary": "Connect charts into a sync group", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ConnectRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ConnectResponse"}}}}},
        "/groups/{group}": {"delete": {"summary": "Disconnect a sync group", "parameters": [{"name": "group", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}},
        "/themes": {
            "get": {"summary": "List registered themes", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ThemesResponse"}}}},
            "post": {"summary": "Fetch and register a theme", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ThemeRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/types.ThemeResponse"}}, "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}
        },
        "/themes/{name}": {"get": {"summary": "Registered theme document", "produces": ["application/json"], "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}}}}
    },
    "definitions": {
        "types.ChartSummary": {"type": "object", "properties": {"id": {"type": "string", "example": "traffic"}, "element": {"type": "string", "example": "traffic-chart"}, "theme": {"type": "string", "example": "dark"}, "group": {"type": "string"}, "resize": {"type": "boolean"}, "listeners": {"type": "integer"}, "series_count": {"type": "integer", "example": 1}}},
        "types.ChartsResponse": {"type": "object", "properties": {"charts": {"type": "array", "items": {"$ref": "#/definitions/types.ChartSummary"}}}},
        "types.UpdateSeriesRequest": {"type": "object", "properties": {"series": {"type": "array", "items": {"type": "object"}}, "not_merge": {"type": "boolean", "example": false}}},
        "types.EventView": {"type": "object", "properties": {"event_type": {"type": "string", "example": "click"}, "listener_id": {"type": "integer", "example": 3}, "description": {"type": "string", "example": "count clicks"}}},
        "types.EventsResponse": {"type": "object", "properties": {"events": {"type": "array", "items": {"$ref": "#/definitions/types.EventView"}}}},
        "types.DispatchRequest": {"type": "object", "properties": {"type": {"type": "string", "example": "mouseover"}, "params": {"type": "object"}}},
        "types.DispatchResponse": {"type": "object", "properties": {"listeners": {"type": "integer", "example": 2}}},
        "types.ResizeRequest": {"type": "object", "properties": {"width": {"type": "integer", "example": 800}, "height": {"type": "integer", "example": 400}}},
        "types.ConnectRequest": {"type": "object", "properties": {"group": {"type": "string", "example": "overview"}, "charts": {"type": "array", "items": {"type": "string"}}}},
        "types.ConnectResponse": {"type": "object", "properties": {"group": {"type": "string", "example": "overview"}}},
        "types.ThemeRequest": {"type": "object", "properties": {"url": {"type": "string", "example": "https://example.com/themes/dark.json"}, "name": {"type": "string", "example": "dark"}}},
        "types.ThemeResponse": {"type": "object", "properties": {"name": {"type": "string", "example": "dark"}}},
        "types.ThemesResponse": {"type": "object", "properties": {"themes": {"type": "array", "items": {"type": "string"}}}},
        "types.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "chart not found: traffic"}, "code": {"type": "integer", "example": 404}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "chartd API",
	Description:      "HTTP API for a server-managed ECharts dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
