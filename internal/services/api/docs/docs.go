// Package docs holds the OpenAPI document for the JSON endpoints under /api/v1.
// `swag init -g internal/services/api/api.go -o internal/services/api/docs`
// regenerates it from the handler annotations
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "operationId": "metaHealth",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.HealthResponse"}}}
                    }
                }
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness with cache ping and provider breaker states",
                "operationId": "metaReady",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ReadyResponse"}}}
                    }
                }
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "operationId": "metaVersion",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}
                    }
                }
            }
        },
        "/route": {
            "post": {
                "tags": ["Route"],
                "summary": "Plan a driving route between two addresses",
                "operationId": "routePlan",
                "requestBody": {
                    "description": "start and end addresses",
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.RouteInput"}}}
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.RouteResult"}}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.RouteError"}}}
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "domain.RouteInput": {
                "type": "object",
                "required": ["start", "end"],
                "properties": {
                    "start": {"type": "string", "maxLength": 300},
                    "end": {"type": "string", "maxLength": 300}
                }
            },
            "domain.RouteResult": {
                "type": "object",
                "properties": {
                    "start": {"type": "string"},
                    "end": {"type": "string"},
                    "distance": {"type": "string"},
                    "duration": {"type": "string"},
                    "instructions": {"type": "string"}
                }
            },
            "domain.RouteError": {
                "type": "object",
                "properties": {
                    "error": {"type": "string"}
                }
            },
            "http.HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean"},
                    "service": {"type": "string"},
                    "started": {"type": "string"},
                    "uptime": {"type": "integer"},
                    "now": {"type": "string"}
                }
            },
            "http.ReadyCheck": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "status": {"type": "string"},
                    "error": {"type": "string"}
                }
            },
            "http.ReadyResponse": {
                "type": "object",
                "properties": {
                    "status": {"type": "string"},
                    "checks": {"type": "array", "items": {"$ref": "#/components/schemas/http.ReadyCheck"}},
                    "providers": {"type": "object", "additionalProperties": {"type": "string"}},
                    "now": {"type": "string"}
                }
            },
            "version.BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "Navline API",
	Description:      "Route planning and service meta endpoints",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
