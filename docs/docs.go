// Package docs регистрирует описание OpenAPI для swagger UI на /docs/*.
// Обновляется вместе с аннотациями обработчиков (swag init -g cmd/weatherblog/main.go).
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
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Регистрация",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/register.Request"}}],
                "responses": {
                    "201": {"description": "Аккаунт создан", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Некорректные данные или имя занято", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Вход по имени пользователя или email",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/login.Request"}}],
                "responses": {
                    "200": {"description": "Токен выдан", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Неверные учетные данные", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Текущий пользователь",
                "responses": {
                    "200": {"description": "Профиль", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Нет токена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/change-password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Смена пароля",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/password.Request"}}],
                "responses": {
                    "200": {"description": "Пароль изменен", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Неверный текущий пароль", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/auth/profile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Изменение профиля",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/profile.Request"}}],
                "responses": {
                    "200": {"description": "Профиль обновлен", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Email занят", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Выход",
                "responses": {"200": {"description": "Выход выполнен", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts": {
            "get": {
                "tags": ["Posts"],
                "summary": "Список опубликованных постов",
                "parameters": [
                    {"type": "integer", "default": 1, "in": "query", "name": "page"},
                    {"type": "integer", "default": 10, "in": "query", "name": "limit"}
                ],
                "responses": {"200": {"description": "Страница постов", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Создание поста",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/create.Request"}}],
                "responses": {
                    "201": {"description": "Пост создан", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Некорректные данные", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/posts/admin": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Все посты (администратор)",
                "responses": {
                    "200": {"description": "Посты", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Недостаточно прав", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/posts/{id}": {
            "get": {
                "tags": ["Posts"],
                "summary": "Пост по ID",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "Пост", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Пост не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Обновление поста",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/update.Request"}}
                ],
                "responses": {
                    "200": {"description": "Пост обновлен", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Не автор и не администратор", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Posts"],
                "summary": "Удаление поста",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "Пост удален", "schema": {"$ref": "#/definitions/response.Response"}},
                    "403": {"description": "Не автор и не администратор", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/posts/{id}/comments": {
            "get": {
                "tags": ["Comments"],
                "summary": "Комментарии поста",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "Комментарии", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Новый комментарий",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/comment.Request"}}
                ],
                "responses": {"201": {"description": "Комментарий создан", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts/{id}/comments/{commentID}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Изменение комментария",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"type": "integer", "in": "path", "name": "commentID", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/comment.Request"}}
                ],
                "responses": {"200": {"description": "Комментарий изменен", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Удаление комментария",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"type": "integer", "in": "path", "name": "commentID", "required": true}
                ],
                "responses": {"200": {"description": "Комментарий удален", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/accounts/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Accounts"],
                "summary": "Включение и отключение аккаунта (администратор)",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/status.Request"}}
                ],
                "responses": {
                    "200": {"description": "Статус изменен", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Аккаунт не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/response.FieldError"}},
                "data": {}
            }
        },
        "response.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "username"},
                "message": {"type": "string", "example": "field username is a required field"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "Error"},
                "error": {"type": "string", "example": "invalid request body"}
            }
        },
        "register.Request": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string", "example": "alice"},
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "Secret123"},
                "full_name": {"type": "string", "example": "Alice Liddell"}
            }
        },
        "login.Request": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "example": "alice"},
                "password": {"type": "string", "example": "Secret123"}
            }
        },
        "password.Request": {
            "type": "object",
            "required": ["currentPassword", "newPassword"],
            "properties": {
                "currentPassword": {"type": "string"},
                "newPassword": {"type": "string"}
            }
        },
        "profile.Request": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "create.Request": {
            "type": "object",
            "required": ["title", "content"],
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "cover_image": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "published"]}
            }
        },
        "update.Request": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "cover_image": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "published"]}
            }
        },
        "comment.Request": {
            "type": "object",
            "required": ["content"],
            "properties": {"content": {"type": "string"}}
        },
        "status.Request": {
            "type": "object",
            "required": ["is_active"],
            "properties": {"is_active": {"type": "boolean"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo метаданные описания API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Weather Blog API",
	Description:      "API блога о погоде: аккаунты, посты и комментарии",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
