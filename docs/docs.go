// Package docs registra la definición Swagger de la API en swag.
// Mantenerlo alineado con las anotaciones godoc de los handlers
// (swag init -g cmd/api/main.go -o docs).
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
        "/api/patients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Listar pacientes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/patients.PatientResponse"}}},
                    "500": {"description": "persistence", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "post": {
                "description": "Crea un paciente. ` + "`" + `name` + "`" + ` es obligatorio; ` + "`" + `email` + "`" + `, si viene, debe ser único. Timestamps en RFC3339.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Registrar paciente",
                "parameters": [
                    {"description": "Datos del paciente", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/patients.createPatientRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/patients.PatientResponse"}},
                    "400": {"description": "validation", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "email already registered", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "500": {"description": "persistence", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/patients/{patientID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Obtener paciente",
                "parameters": [
                    {"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.PatientResponse"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/patients/{patientID}/treatments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["treatments"],
                "summary": "Listar tratamientos de un paciente",
                "parameters": [
                    {"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/treatments.TreatmentResponse"}}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/patients/{patientID}/risk": {
            "get": {
                "description": "Pide al servicio de texto una evaluación de riesgos por falta de seguimiento. Sin last_visit, sin credencial configurada o ante una falla del servicio responde 200 con un texto de diagnóstico y ` + "`" + `status` + "`" + ` distinto de \"ok\".",
                "produces": ["application/json"],
                "tags": ["followup"],
                "summary": "Análisis de riesgo (IA)",
                "parameters": [
                    {"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/followup.riskResponse"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "500": {"description": "persistence", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/patients/{patientID}/reminder": {
            "get": {
                "description": "Compone el recordatorio con días desde la última visita y nivel de riesgo (Low/Medium/High).",
                "produces": ["application/json"],
                "tags": ["followup"],
                "summary": "Recordatorio de seguimiento",
                "parameters": [
                    {"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/followup.reminderResponse"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "500": {"description": "persistence", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/treatments": {
            "post": {
                "description": "Crea un tratamiento para un paciente existente. ` + "`" + `date` + "`" + ` es obligatorio (RFC3339).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["treatments"],
                "summary": "Registrar tratamiento",
                "parameters": [
                    {"description": "Datos del tratamiento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/treatments.createTreatmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/treatments.TreatmentResponse"}},
                    "400": {"description": "validation", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "500": {"description": "persistence", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/api/treatments/{treatmentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["treatments"],
                "summary": "Obtener tratamiento",
                "parameters": [
                    {"type": "integer", "description": "ID del tratamiento", "name": "treatmentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/treatments.TreatmentResponse"}},
                    "404": {"description": "treatment not found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "followup.reminderResponse": {
            "type": "object",
            "properties": {
                "days_since_visit": {"type": "integer"},
                "reminder": {"type": "string"},
                "risk_level": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "followup.riskResponse": {
            "type": "object",
            "properties": {
                "risk_analysis": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "patients.PatientResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "last_visit": {"type": "string"},
                "name": {"type": "string"},
                "next_visit": {"type": "string"},
                "notes": {"type": "string"},
                "phone": {"type": "string"},
                "risk_level": {"type": "string"},
                "treatment_status": {"type": "string"}
            }
        },
        "patients.createPatientRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "last_visit": {"type": "string"},
                "name": {"type": "string"},
                "next_visit": {"type": "string"},
                "notes": {"type": "string"},
                "phone": {"type": "string"},
                "treatment_status": {"type": "string"}
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "treatments.TreatmentResponse": {
            "type": "object",
            "properties": {
                "complications": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "integer"},
                "next_follow_up": {"type": "string"},
                "patient_id": {"type": "integer"},
                "status": {"type": "string"},
                "treatment_type": {"type": "string"}
            }
        },
        "treatments.createTreatmentRequest": {
            "type": "object",
            "properties": {
                "complications": {"type": "string"},
                "date": {"type": "string"},
                "next_follow_up": {"type": "string"},
                "patient_id": {"type": "integer"},
                "status": {"type": "string"},
                "treatment_type": {"type": "string"}
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
	Title:            "Dental Clinical Records API",
	Description:      "Fichas de pacientes, tratamientos y seguimiento (recordatorios y análisis de riesgo).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
