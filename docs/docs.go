// Package docs registra o documento OpenAPI servido em /api/docs.
// Mantido no formato gerado por `swag init`.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "List clients",
                "parameters": [
                    {"type": "string", "description": "Search over name, contact, email, contract number", "name": "search", "in": "query"},
                    {"type": "string", "description": "active | inactive", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Create client",
                "parameters": [
                    {"description": "Client", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateClientRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/clients/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Client count by status",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/clients/search/{term}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Search clients by term",
                "parameters": [
                    {"type": "string", "description": "At least 2 characters", "name": "term", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/clients/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Get client",
                "parameters": [{"type": "integer", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Update client (partial)",
                "parameters": [
                    {"type": "integer", "description": "Client ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateClientRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["clients"],
                "summary": "Delete client",
                "parameters": [{"type": "integer", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "List services",
                "parameters": [
                    {"type": "string", "description": "Service type", "name": "type", "in": "query"},
                    {"type": "string", "description": "Service status", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Create service",
                "parameters": [
                    {"description": "Service", "name": "service", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateServiceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/services/type/{type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Active services of a type",
                "parameters": [{"type": "string", "description": "Service type", "name": "type", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/services/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Get service",
                "parameters": [{"type": "integer", "description": "Service ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Update service (partial)",
                "parameters": [
                    {"type": "integer", "description": "Service ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "service", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["services"],
                "summary": "Delete service",
                "parameters": [{"type": "integer", "description": "Service ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"type": "string", "description": "Event type", "name": "type", "in": "query"},
                    {"type": "string", "description": "Event status", "name": "status", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "string", "description": "Search over name, client name, location", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create event",
                "parameters": [
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/events/upcoming": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Upcoming scheduled/confirmed events",
                "parameters": [{"type": "integer", "description": "Default 10", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Event totals",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get event",
                "parameters": [{"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update event (partial)",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["events"],
                "summary": "Delete event",
                "parameters": [{"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/reservations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "List reservations",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Create reservation",
                "parameters": [
                    {"type": "string", "description": "Makes the request safely repeatable", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Reservation", "name": "reservation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateReservationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/reservations/availability": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Check whether a room is free",
                "parameters": [
                    {"type": "string", "description": "Room", "name": "room", "in": "query", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query", "required": true},
                    {"type": "string", "description": "HH:MM", "name": "startTime", "in": "query", "required": true},
                    {"type": "string", "description": "HH:MM", "name": "endTime", "in": "query", "required": true},
                    {"type": "integer", "description": "Reservation ignored by the check", "name": "excludeId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AvailabilityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/reservations/upcoming": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Upcoming pending/confirmed reservations",
                "parameters": [{"type": "integer", "description": "Default 10", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reservations/stats/weekly": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Reservations of the last 7 days by weekday and room",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reservations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Get reservation",
                "parameters": [{"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Update reservation (partial)",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "reservation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateReservationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperr.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["reservations"],
                "summary": "Delete reservation",
                "parameters": [{"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard counters and next occurrences",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/dashboard/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard overview",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperr.HTTPError"}}
                }
            }
        },
        "/audit-logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Audit trail",
                "parameters": [
                    {"type": "string", "name": "action", "in": "query"},
                    {"type": "string", "name": "entity", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "from", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD (inclusive)", "name": "to", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "httperr.HTTPError": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error_code": {"type": "string"},
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "timestamp": {"type": "string"},
                "services": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.AvailabilityResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "available": {"type": "boolean"}
            }
        },
        "handlers.CreateClientRequest": {
            "type": "object",
            "required": ["name", "contact", "email", "contractNumber"],
            "properties": {
                "name": {"type": "string"},
                "contact": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "contractNumber": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "notes": {"type": "string"}
            }
        },
        "handlers.UpdateClientRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "contact": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "contractNumber": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "notes": {"type": "string"}
            }
        },
        "handlers.CreateServiceRequest": {
            "type": "object",
            "required": ["title", "description", "price", "type"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "new", "limited"]},
                "type": {"type": "string", "enum": ["coffee", "lunch", "cocktail", "room_rental", "enhanced_coffee", "reservation"]}
            }
        },
        "handlers.UpdateServiceRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "new", "limited"]},
                "type": {"type": "string", "enum": ["coffee", "lunch", "cocktail", "room_rental", "enhanced_coffee", "reservation"]}
            }
        },
        "handlers.CreateEventRequest": {
            "type": "object",
            "required": ["name", "date", "startTime", "endTime", "type", "location"],
            "properties": {
                "name": {"type": "string"},
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "type": {"type": "string", "enum": ["coffee", "lunch", "cocktail", "meeting", "training", "other"]},
                "clientName": {"type": "string"},
                "clientContact": {"type": "string"},
                "serviceTitle": {"type": "string"},
                "serviceType": {"type": "string"},
                "participants": {"type": "integer"},
                "location": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string", "enum": ["scheduled", "confirmed", "in-progress", "completed", "cancelled"]}
            }
        },
        "handlers.UpdateEventRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "type": {"type": "string"},
                "clientName": {"type": "string"},
                "clientContact": {"type": "string"},
                "serviceTitle": {"type": "string"},
                "serviceType": {"type": "string"},
                "participants": {"type": "integer"},
                "location": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handlers.CreateReservationRequest": {
            "type": "object",
            "required": ["room", "date", "startTime", "endTime", "clientId", "purpose"],
            "properties": {
                "room": {"type": "string"},
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "clientId": {"type": "integer"},
                "eventId": {"type": "integer"},
                "purpose": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "confirmed", "in-use", "completed", "cancelled"]},
                "participants": {"type": "integer"},
                "equipment": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"}
            }
        },
        "handlers.UpdateReservationRequest": {
            "type": "object",
            "properties": {
                "room": {"type": "string"},
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "clientId": {"type": "integer"},
                "eventId": {"type": "integer"},
                "purpose": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "confirmed", "in-use", "completed", "cancelled"]},
                "participants": {"type": "integer"},
                "equipment": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pause Manager API",
	Description:      "Gestion des pauses café, déjeuners, cocktails et réservations de salles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
