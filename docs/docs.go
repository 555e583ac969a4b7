// Package docs holds the OpenAPI description served under /swagger.
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
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"description": "Checks email and password and binds the account to the session cookie.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "lobby.LoginInput",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/lobby.LoginInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.AuthResponse"
						}
					},
					"400": {
						"description": "validation_error",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					},
					"401": {
						"description": "invalid_credentials",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register",
				"description": "Creates an account and logs it in. All field problems are reported at once.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "lobby.RegisterInput",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/lobby.RegisterInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/lobby.AuthResponse"
						}
					},
					"400": {
						"description": "validation_error",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/reset": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Request a password reset",
				"description": "Accepts any non-empty email. No mail is sent.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "lobby.ResetInput",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/lobby.ResetInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.MessageResponse"
						}
					},
					"400": {
						"description": "validation_error",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log out",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.OKResponse"
						}
					}
				}
			}
		},
		"/profile/nickname": {
			"post": {
				"tags": [
					"profile"
				],
				"summary": "Change nickname",
				"description": "Renames the logged-in account. A session whose account is gone is cleared.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "lobby.NicknameInput",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/lobby.NicknameInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.ProfileResponse"
						}
					},
					"400": {
						"description": "validation_error",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		},
		"/rooms": {
			"get": {
				"tags": [
					"rooms"
				],
				"summary": "List rooms",
				"description": "Newest rooms first, optionally filtered by mode and access.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "quick or classic",
						"name": "mode",
						"in": "query"
					},
					{
						"type": "string",
						"description": "public or private",
						"name": "access",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 20,
						"description": "Page size, 1..100",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 0,
						"description": "Rows to skip",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.RoomsResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"rooms"
				],
				"summary": "Create a room",
				"description": "Missing mode, maxPlayers and access default to quick, 2 and public. Private rooms need a password of at least 4 characters.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "lobby.CreateRoomInput",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/lobby.CreateRoomInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/lobby.CreateRoomResponse"
						}
					},
					"400": {
						"description": "validation_error",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		},
		"/rooms/{id}/join": {
			"post": {
				"tags": [
					"rooms"
				],
				"summary": "Join a room",
				"description": "Takes a seat and returns the match endpoint for this player.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Room ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "lobby.JoinRoomInput",
						"name": "input",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/lobby.JoinRoomInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.JoinRoomResponse"
						}
					},
					"403": {
						"description": "forbidden or room_full",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					},
					"404": {
						"description": "not_found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/chat/{roomId}": {
			"get": {
				"tags": [
					"chat"
				],
				"summary": "Chat history",
				"description": "Messages oldest first. With sinceId only newer messages are returned; an unknown sinceId returns the whole history. Unknown rooms have no messages.",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Room ID",
						"name": "roomId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Last message id the client has",
						"name": "sinceId",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/lobby.ChatListResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"chat"
				],
				"summary": "Post a chat message",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Room ID",
						"name": "roomId",
						"in": "path",
						"required": true
					},
					{
						"description": "lobby.ChatPostInput",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/lobby.ChatPostInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/lobby.ChatPostResponse"
						}
					},
					"400": {
						"description": "validation_error",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					},
					"404": {
						"description": "not_found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"httpx.ErrorResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": false
				},
				"code": {
					"type": "string",
					"example": "validation_error"
				},
				"message": {
					"type": "string",
					"example": "Помилка валідації полів реєстрації."
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"lobby.LoginInput": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "a@x.com"
				},
				"password": {
					"type": "string",
					"example": "secret"
				}
			}
		},
		"lobby.RegisterInput": {
			"type": "object",
			"properties": {
				"nickname": {
					"type": "string",
					"example": "Legend"
				},
				"email": {
					"type": "string",
					"example": "a@x.com"
				},
				"password": {
					"type": "string",
					"example": "secret"
				}
			}
		},
		"lobby.ResetInput": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "a@x.com"
				}
			}
		},
		"lobby.NicknameInput": {
			"type": "object",
			"properties": {
				"nickname": {
					"type": "string",
					"example": "Legend"
				}
			}
		},
		"lobby.CreateRoomInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"example": "Room A"
				},
				"mode": {
					"type": "string",
					"example": "quick"
				},
				"maxPlayers": {
					"type": "integer",
					"example": 2
				},
				"access": {
					"type": "string",
					"example": "public"
				},
				"password": {
					"type": "string",
					"example": "1234"
				}
			}
		},
		"lobby.JoinRoomInput": {
			"type": "object",
			"properties": {
				"password": {
					"type": "string",
					"example": "1234"
				}
			}
		},
		"lobby.ChatPostInput": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string",
					"example": "gl hf"
				},
				"author": {
					"type": "string",
					"example": "Legend"
				}
			}
		},
		"lobby.Stats": {
			"type": "object",
			"properties": {
				"matchesPlayed": {
					"type": "integer",
					"example": 10
				},
				"wins": {
					"type": "integer",
					"example": 6
				}
			}
		},
		"lobby.UserView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "3f0c5d1e-8f7e-4a55-9a4e-0f3c1b0e9d2a"
				},
				"nickname": {
					"type": "string",
					"example": "Legend"
				},
				"email": {
					"type": "string",
					"example": "a@x.com"
				},
				"stats": {
					"$ref": "#/definitions/lobby.Stats"
				}
			}
		},
		"lobby.RoomView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "1"
				},
				"name": {
					"type": "string",
					"example": "Quick demo #1"
				},
				"mode": {
					"type": "string",
					"example": "quick"
				},
				"maxPlayers": {
					"type": "integer",
					"example": 2
				},
				"currentPlayers": {
					"type": "integer",
					"example": 0
				},
				"access": {
					"type": "string",
					"example": "public"
				},
				"hasPassword": {
					"type": "boolean",
					"example": false
				},
				"status": {
					"type": "string",
					"example": "waiting"
				},
				"pingMs": {
					"type": "integer",
					"example": 42
				}
			}
		},
		"lobby.MessageView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"author": {
					"type": "string",
					"example": "Гравець"
				},
				"text": {
					"type": "string",
					"example": "gl hf"
				},
				"createdAt": {
					"type": "string",
					"example": "2025-01-01T12:00:00.000000Z"
				}
			}
		},
		"lobby.AuthResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": true
				},
				"message": {
					"type": "string",
					"example": "Успішний вхід. Welcome back!"
				},
				"token": {
					"type": "string",
					"example": "dev-token"
				},
				"user": {
					"$ref": "#/definitions/lobby.UserView"
				}
			}
		},
		"lobby.MessageResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": true
				},
				"message": {
					"type": "string",
					"example": "Лист надіслано. Перевірте свою пошту."
				}
			}
		},
		"lobby.OKResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": true
				}
			}
		},
		"lobby.ProfileResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": true
				},
				"message": {
					"type": "string",
					"example": "Зміни збережено."
				},
				"user": {
					"$ref": "#/definitions/lobby.UserView"
				}
			}
		},
		"lobby.RoomsResponse": {
			"type": "object",
			"properties": {
				"rooms": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/lobby.RoomView"
					}
				}
			}
		},
		"lobby.CreateRoomResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": true
				},
				"room": {
					"$ref": "#/definitions/lobby.RoomView"
				},
				"inviteCode": {
					"type": "string",
					"example": "CL-1"
				}
			}
		},
		"lobby.JoinRoomResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean",
					"example": true
				},
				"room": {
					"$ref": "#/definitions/lobby.RoomView"
				},
				"playerId": {
					"type": "string",
					"example": "p_1a2b3c4d"
				},
				"wsUrl": {
					"type": "string",
					"example": "ws://localhost:8081/ws/match/1?token=dev-token&playerId=p_1a2b3c4d"
				}
			}
		},
		"lobby.ChatListResponse": {
			"type": "object",
			"properties": {
				"messages": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/lobby.MessageView"
					}
				}
			}
		},
		"lobby.ChatPostResponse": {
			"type": "object",
			"properties": {
				"message": {
					"$ref": "#/definitions/lobby.MessageView"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"City Legends API",
	Description:	  "Accounts, rooms and room chat for the City Legends lobby.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
