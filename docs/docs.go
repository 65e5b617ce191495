// Package docs registers the OpenAPI description served under /swagger.
// Keep it in sync with the @Router annotations on the controllers (swag init -g cmd/api/main.go).
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
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Register a new user",
                "description": "Creates an account. Role defaults to usuario; role admin requires an admin bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.SignupRequest"}}],
                "responses": {
                    "201": {"description": "User registered", "schema": {"$ref": "#/definitions/dto.SignupResponse"}},
                    "400": {"description": "Missing fields or passwords do not match", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Invalid bearer token", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Admin role requested without admin credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Access token", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/usuarios/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/usuarios/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Admin role required"}, "404": {"description": "User not found"}}
            }
        },
        "/cursos": {
            "get": {"tags": ["cursos"], "summary": "List courses", "responses": {"200": {"description": "OK"}}},
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["cursos"],
                "summary": "Create a course",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid course data"}, "403": {"description": "Admin role required"}}
            }
        },
        "/cursos/{id}": {
            "get": {"tags": ["cursos"], "summary": "Get a course", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["cursos"], "summary": "Update a course", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["cursos"], "summary": "Delete a course", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}}
        },
        "/ofertas": {
            "get": {"tags": ["ofertas"], "summary": "List job offers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["ofertas"], "summary": "Create a job offer", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid offer data"}}}
        },
        "/ofertas/{id}": {
            "get": {"tags": ["ofertas"], "summary": "Get a job offer", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Offer not found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["ofertas"], "summary": "Update a job offer", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Offer not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["ofertas"], "summary": "Delete a job offer", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Offer not found"}}}
        },
        "/ofertas/postular": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["ofertas"],
                "summary": "Apply to a job offer",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.ApplyRequest"}}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Offer not found"}, "409": {"description": "Already applied"}}
            }
        },
        "/ofertas/postulantes": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ofertas"], "summary": "List applicants", "responses": {"200": {"description": "OK"}, "403": {"description": "Admin role required"}}}
        },
        "/ofertas/mis-postulaciones": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ofertas"], "summary": "My applications", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/ofertas/postulaciones/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["ofertas"], "summary": "Withdraw an application", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Application not found for this user"}}}
        },
        "/inscripciones": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["inscripciones"], "summary": "List all enrollments", "responses": {"200": {"description": "OK"}, "403": {"description": "Admin role required"}}},
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["inscripciones"],
                "summary": "Enroll in a course",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.EnrollRequest"}}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Course not found"}, "409": {"description": "Already enrolled"}}
            }
        },
        "/inscripciones/usuario": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["inscripciones"], "summary": "My enrollments", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/inscripciones/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["inscripciones"], "summary": "Cancel an enrollment", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Enrollment not found for this user"}}}
        },
        "/reportes/inscripciones": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reportes"], "summary": "Enrollment report", "produces": ["text/csv"], "responses": {"200": {"description": "reporte_inscripciones.csv"}}}
        },
        "/reportes/postulaciones": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reportes"], "summary": "Application report", "produces": ["text/csv"], "responses": {"200": {"description": "reporte_postulaciones.csv"}}}
        }
    },
    "definitions": {
        "dto.SignupRequest": {
            "type": "object",
            "required": ["username", "email", "password", "confirm_password"],
            "properties": {
                "username": {"type": "string", "example": "ana"},
                "email": {"type": "string", "example": "ana@farmacia.com"},
                "password": {"type": "string", "example": "secreta123"},
                "confirm_password": {"type": "string", "example": "secreta123"},
                "role": {"type": "string", "example": "usuario"}
            }
        },
        "dto.SignupResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user_id": {"type": "integer"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "user_id": {"type": "integer"}, "username": {"type": "string"}, "role": {"type": "string"}}
        },
        "dto.CourseRequest": {
            "type": "object",
            "required": ["titulo", "duracion_horas", "fecha_inicio", "fecha_fin", "instructor", "cupo_maximo"],
            "properties": {
                "titulo": {"type": "string"},
                "descripcion": {"type": "string"},
                "duracion_horas": {"type": "integer", "example": 20},
                "instructor": {"type": "string"},
                "cupo_maximo": {"type": "integer", "example": 30},
                "fecha_inicio": {"type": "string", "example": "2025-05-01"},
                "fecha_fin": {"type": "string", "example": "2025-05-31"},
                "estado": {"type": "string", "example": "activo"}
            }
        },
        "dto.EnrollRequest": {
            "type": "object",
            "required": ["curso_id"],
            "properties": {"curso_id": {"type": "integer"}}
        },
        "dto.ApplyRequest": {
            "type": "object",
            "required": ["idOferta"],
            "properties": {"idOferta": {"type": "integer"}}
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {
                    "type": "object",
                    "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "field": {"type": "string"}}
                },
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Farmacia Santa Martha HR Portal API",
	Description:      "Accounts, course enrollments and job applications for pharmacy staff.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
