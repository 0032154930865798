// Package docs registers the Swagger document served at /swagger, kept in
// step with the handler annotations.
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
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["charts"],
                "summary": "Dashboard",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chart/{filename}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["charts"],
                "summary": "Fetch chart",
                "parameters": [
                    {
                        "type": "string",
                        "example": "sensor_3_engine_5.html",
                        "description": "Chart filename",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/charts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "List charts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ChartInfo"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/generate_chart": {
            "post": {
                "description": "Interprets the prompt (sensor N / engine M) and renders the matching chart. Failures are reported with success=false, never as an HTTP error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["charts"],
                "summary": "Generate chart from prompt",
                "parameters": [
                    {
                        "description": "Prompt",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.GenerateChartRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChartResult"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether the model and the telemetry table were loaded at startup.",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "WebSocket feed of {\"type\":\"charts\",\"data\":[...]}, sent on connect and then every interval (?interval=2s, at most 10s).",
                "tags": ["charts"],
                "summary": "Live chart catalog",
                "responses": {}
            }
        },
        "/predict": {
            "post": {
                "description": "Runs the loaded regression model over the feature row. When current_cycle is given, predicted_failure_cycle = current_cycle + predicted_rul.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inference"],
                "summary": "Predict remaining useful life",
                "parameters": [
                    {
                        "description": "Feature snapshot",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.PredictionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PredictionResponse"}},
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.GenerateChartRequest": {
            "type": "object",
            "properties": {
                "prompt": {"description": "Free-text request, e.g. \"sensor 3 engine 5\"", "type": "string", "example": "show sensor 3 for engine 5"}
            }
        },
        "models.ChartInfo": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "path": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.ChartResult": {
            "type": "object",
            "properties": {
                "chart_path": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.PredictionRequest": {
            "type": "object",
            "properties": {
                "current_cycle": {"description": "Elapsed operating cycles at snapshot time; null when unknown", "type": "number", "x-nullable": true},
                "features": {"description": "Sensor/setting readings keyed by column name", "type": "object", "additionalProperties": {"type": "number", "format": "float64"}}
            }
        },
        "models.PredictionResponse": {
            "type": "object",
            "properties": {
                "predicted_failure_cycle": {"type": "number"},
                "predicted_rul": {"type": "number"}
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
	Title:            "Engine RUL API",
	Description:      "Remaining-useful-life inference and prompt-driven telemetry charts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
