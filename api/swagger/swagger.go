package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Unimap API",
        "description": "Administração de horários acadêmicos: cursos, salas, turmas, alunos, aulas e importação de planilhas",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login e sessão"},
        {"name": "Cursos", "description": "Cadastro de cursos"},
        {"name": "Salas", "description": "Cadastro de salas"},
        {"name": "Turmas", "description": "Cadastro de turmas"},
        {"name": "Alunos", "description": "Cadastro de alunos"},
        {"name": "Matriculas", "description": "Matrícula de alunos em turmas"},
        {"name": "Aulas", "description": "Aulas agendadas"},
        {"name": "Import", "description": "Importação de aulas via CSV"},
        {"name": "Export", "description": "Exportação de horários"},
        {"name": "Dashboard", "description": "Indicadores agregados"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and issue tokens",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/cursos": {
            "get": {
                "tags": ["Cursos"],
                "summary": "List cursos",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "ativo", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Cursos"],
                "summary": "Create curso",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Codigo already in use"}
                }
            }
        },
        "/cursos/{id}": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Get curso",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Cursos"],
                "summary": "Update curso",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Cursos"],
                "summary": "Delete curso",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/salas": {
            "get": {
                "tags": ["Salas"],
                "summary": "List salas",
                "parameters": [
                    {"name": "bloco", "in": "query", "type": "string"},
                    {"name": "andar", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Salas"],
                "summary": "Create sala",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/salas/{id}": {
            "get": {
                "tags": ["Salas"],
                "summary": "Get sala",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Salas"],
                "summary": "Update sala",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RoomRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Salas"],
                "summary": "Delete sala",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/turmas": {
            "get": {
                "tags": ["Turmas"],
                "summary": "List turmas",
                "parameters": [
                    {"name": "cursoId", "in": "query", "type": "string"},
                    {"name": "periodo", "in": "query", "type": "integer"},
                    {"name": "ano", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Turmas"],
                "summary": "Create turma",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TurmaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/turmas/{id}": {
            "get": {
                "tags": ["Turmas"],
                "summary": "Get turma",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Turmas"],
                "summary": "Update turma",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TurmaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Turmas"],
                "summary": "Delete turma",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/turmas/{id}/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Download turma schedule",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered schedule file"}
                }
            }
        },
        "/alunos": {
            "get": {
                "tags": ["Alunos"],
                "summary": "List alunos",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "turmaId", "in": "query", "type": "string"},
                    {"name": "ativo", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Alunos"],
                "summary": "Create aluno",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Matricula already in use"}
                }
            }
        },
        "/alunos/{id}": {
            "get": {
                "tags": ["Alunos"],
                "summary": "Get aluno",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Alunos"],
                "summary": "Update aluno",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Alunos"],
                "summary": "Deactivate aluno",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/matriculas": {
            "get": {
                "tags": ["Matriculas"],
                "summary": "List matriculas",
                "parameters": [
                    {"name": "alunoId", "in": "query", "type": "string"},
                    {"name": "turmaId", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["ativa", "cancelada"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Matriculas"],
                "summary": "Enroll aluno in turma",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MatricularRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already enrolled"}
                }
            },
            "delete": {
                "tags": ["Matriculas"],
                "summary": "Cancel an active matricula",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MatricularRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/aulas": {
            "get": {
                "tags": ["Aulas"],
                "summary": "List aulas",
                "parameters": [
                    {"name": "turma", "in": "query", "type": "string"},
                    {"name": "professor", "in": "query", "type": "string"},
                    {"name": "curso", "in": "query", "type": "string"},
                    {"name": "data", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Aulas"],
                "summary": "Create aula",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AulaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/aulas/{id}": {
            "get": {
                "tags": ["Aulas"],
                "summary": "Get aula",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Aulas"],
                "summary": "Update aula",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Aulas"],
                "summary": "Delete aula",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/import/aulas/validar": {
            "post": {
                "tags": ["Import"],
                "summary": "Validate an uploaded CSV of aulas",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Validation result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Another import is running"}
                }
            }
        },
        "/import/aulas": {
            "post": {
                "tags": ["Import"],
                "summary": "Persist validated aulas",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportPayload"}}
                ],
                "responses": {
                    "200": {"description": "Batch outcome", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Another import is running"}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CourseRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "codigo": {"type": "string"}
            },
            "required": ["nome", "codigo"]
        },
        "RoomRequest": {
            "type": "object",
            "properties": {
                "numero": {"type": "string"},
                "bloco": {"type": "string"},
                "andar": {"type": "integer"},
                "capacidade": {"type": "integer"}
            },
            "required": ["numero", "bloco"]
        },
        "TurmaRequest": {
            "type": "object",
            "properties": {
                "curso_id": {"type": "string"},
                "nome": {"type": "string"},
                "periodo": {"type": "integer"},
                "ano": {"type": "integer"}
            },
            "required": ["curso_id", "nome", "periodo", "ano"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "matricula": {"type": "string"}
            },
            "required": ["nome", "email", "matricula"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "matricula": {"type": "string"},
                "ativo": {"type": "boolean"}
            },
            "required": ["nome", "email", "matricula"]
        },
        "MatricularRequest": {
            "type": "object",
            "properties": {
                "aluno_id": {"type": "string"},
                "turma_id": {"type": "string"}
            },
            "required": ["aluno_id", "turma_id"]
        },
        "AulaRequest": {
            "type": "object",
            "properties": {
                "professor_nome": {"type": "string"},
                "disciplina": {"type": "string"},
                "curso": {"type": "string"},
                "turma": {"type": "string"},
                "periodo_original": {"type": "string"},
                "sala_numero": {"type": "string"},
                "sala_bloco": {"type": "string"},
                "horario_inicio": {"type": "string"},
                "horario_fim": {"type": "string"},
                "data_aula": {"type": "string"}
            },
            "required": ["professor_nome", "disciplina", "curso", "turma", "horario_inicio", "horario_fim", "data_aula"]
        },
        "ClassRecord": {
            "type": "object",
            "properties": {
                "professor_nome": {"type": "string"},
                "disciplina": {"type": "string"},
                "curso": {"type": "string"},
                "turma": {"type": "string"},
                "periodo_original": {"type": "string"},
                "sala_numero": {"type": "string"},
                "sala_bloco": {"type": "string"},
                "horario_inicio": {"type": "string"},
                "horario_fim": {"type": "string"},
                "data_aula": {"type": "string"},
                "dia_semana": {"type": "integer"},
                "dia_semana_nome": {"type": "string"}
            }
        },
        "ImportPayload": {
            "type": "object",
            "properties": {
                "aulas": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/ClassRecord"}
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
