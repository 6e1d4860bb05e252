// Package docs registers the Swagger document served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/years": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Available seasons",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/schedule/{year}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Season schedule",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/sessions/{year}/{round}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Sessions of a round",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/drivers/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Drivers"
                ],
                "summary": "Driver roster of a session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    }
                ]
            }
        },
        "/api/laps/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Drivers"
                ],
                "summary": "Lap records per driver",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "drivers",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated driver codes"
                    }
                ]
            }
        },
        "/api/telemetry/{year}/{round}/{session}/{driver}/{lap}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Telemetry"
                ],
                "summary": "Telemetry channels of one lap",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "driver",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "lap",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/track/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Track"
                ],
                "summary": "Track layout of the session's fastest lap",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    }
                ]
            }
        },
        "/api/track/{year}/{round}/{session}/map": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Track"
                ],
                "summary": "Speed coloured circuit map",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    }
                ]
            }
        },
        "/api/track/{year}/{round}/{session}/map.svg": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Track"
                ],
                "summary": "Circuit map as SVG",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "width",
                        "in": "query",
                        "type": "integer",
                        "description": "Image width in pixels"
                    }
                ]
            }
        },
        "/api/export/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Export"
                ],
                "summary": "Export lap data",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "drivers",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated driver codes"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "json",
                            "csv",
                            "table"
                        ]
                    }
                ]
            }
        },
        "/api/compare/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Compare drivers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "drivers",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated driver codes"
                    }
                ]
            }
        },
        "/api/weather/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Session weather",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    }
                ]
            }
        },
        "/api/fuel/{year}/{round}/{session}/{driver}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Fuel estimate for a driver",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "driver",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/performance/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Performance metrics per driver",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "drivers",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated driver codes"
                    }
                ]
            }
        },
        "/api/custom-insights/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Insights"
                ],
                "summary": "Catalog insights for the session type",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    }
                ]
            }
        },
        "/api/ai-insights/{year}/{round}/{session}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Insights"
                ],
                "summary": "Narrative insights from the language model, or templated text",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "drivers",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated driver codes"
                    },
                    {
                        "name": "context",
                        "in": "query",
                        "type": "string",
                        "description": "Extra context for the analysis"
                    }
                ]
            }
        },
        "/ws/telemetry/{year}/{round}/{session}/{driver}/{lap}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Telemetry"
                ],
                "summary": "Replay lap telemetry over a websocket",
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "round",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "session",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "FP1",
                            "FP2",
                            "FP3",
                            "SQ",
                            "S",
                            "Q",
                            "R"
                        ]
                    },
                    {
                        "name": "driver",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "lap",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "speed",
                        "in": "query",
                        "type": "number",
                        "description": "Playback speed-up factor"
                    }
                ]
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lapla Dashboard API",
	Description:      "Motorsport timing dashboard: schedules, sessions, drivers, laps, telemetry, track maps, derived metrics, insights and exports.",
	InfoInstanceName: "dashboard",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
