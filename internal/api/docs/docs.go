// Package docs registers the OpenAPI document served by the Swagger UI.
// Keep it in sync with the godoc annotations on the handlers in internal/api.
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
        "/api/convert": {
            "post": {
                "description": "Converts a USD amount to BRL at the PTAX sell rate of the day before the reference date and renders the IN RFB nº 1.312/2012 disclosure text. Without a date, the reference date is today.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Render a PTAX conversion disclosure",
                "parameters": [
                    {
                        "description": "Amount in USD, optional reference date (DDMMYYYY) and source flag",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.ConvertRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Conversion rendered", "schema": {"$ref": "#/definitions/api.ConvertResponse"}},
                    "400": {"description": "Invalid amount or date", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Rate unavailable", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/api/info": {
            "get": {
                "description": "Static description of the endpoints, data source and date format.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API descriptor",
                "responses": {
                    "200": {"description": "API information", "schema": {"$ref": "#/definitions/api.InfoResponse"}}
                }
            }
        },
        "/api/rate": {
            "get": {
                "description": "Returns the PTAX sell rate of the day before the reference date. Without a date, the reference date is today.",
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Get the applicable PTAX sell rate",
                "parameters": [
                    {
                        "maxLength": 8,
                        "minLength": 8,
                        "type": "string",
                        "description": "Reference date in DDMMYYYY",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "Rate found", "schema": {"$ref": "#/definitions/api.RateResponse"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Rate unavailable", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Always returns 200 if the service is running. The upstream rate service is not probed.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check (liveness)",
                "responses": {
                    "200": {"description": "Service is up", "schema": {"$ref": "#/definitions/api.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ConvertData": {
            "type": "object",
            "properties": {
                "brl_amount": {"type": "number", "example": 37011.78},
                "date": {"type": "string", "example": "06/08/2025"},
                "rate": {"type": "number", "example": 5.4638},
                "source": {"type": "string", "example": "SGS - Banco Central do Brasil"},
                "source_url": {"type": "string", "example": "https://api.bcb.gov.br/dados/serie/bcdata.sgs.1/dados?formato=json&dataInicial=06/08/2025&dataFinal=06/08/2025"},
                "usd_amount": {"type": "number", "example": 6774}
            }
        },
        "api.ConvertRequest": {
            "type": "object",
            "required": ["usd_amount"],
            "properties": {
                "date": {"type": "string", "example": "07082025"},
                "show_url": {"type": "boolean", "example": false},
                "usd_amount": {"type": "number", "example": 6774}
            }
        },
        "api.ConvertResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/api.ConvertData"},
                "success": {"type": "boolean", "example": true},
                "text": {"type": "string", "example": "Valor recebido em moeda estrangeira (USD 6.774,00), convertido conforme PTAX de venda de 06/08/2025 (R$ 5,4638), conforme IN RFB nº 1.312/2012. Valor total em reais: R$ 37.011,78."}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "usd_amount deve ser um número positivo"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "service": {"type": "string", "example": "invoice_description_generator"},
                "status": {"type": "string", "example": "healthy"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "api.InfoResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "format": {"type": "string", "example": "DDMMYYYY para datas"},
                "name": {"type": "string", "example": "Invoice Description Generator API"},
                "source": {"type": "string", "example": "SGS - Banco Central do Brasil"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "api.RateData": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "06/08/2025"},
                "rate": {"type": "number", "example": 5.4638},
                "source": {"type": "string", "example": "SGS - Banco Central do Brasil"},
                "source_url": {"type": "string"}
            }
        },
        "api.RateResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/api.RateData"},
                "success": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PTAX Disclosure Service API",
	Description:      "Converts USD amounts to BRL at the PTAX sell rate and renders the IN RFB nº 1.312/2012 disclosure text.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
