// Package docs holds the swagger document served at /swagger/.
// Regenerate with: swag init -g cmd/server/main.go
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
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/users": {
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Create a user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User to create",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "username taken",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get a user",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.UserResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/users/{userID}/decks": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List a user's decks",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.DeckResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/decks": {
            "get": {
                "tags": [
                    "Decks"
                ],
                "summary": "List decks",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.DeckResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Decks"
                ],
                "summary": "Create a deck",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Deck to create",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateDeckRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.DeckResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "user not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/decks/{deckID}": {
            "get": {
                "tags": [
                    "Decks"
                ],
                "summary": "Get a deck",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.DeckResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Decks"
                ],
                "summary": "Update a deck",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.UpdateDeckRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.DeckResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Decks"
                ],
                "summary": "Delete a deck",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/decks/{deckID}/stats": {
            "get": {
                "tags": [
                    "Decks"
                ],
                "summary": "Deck statistics",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.DeckStatsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/decks/{deckID}/flashcards": {
            "get": {
                "tags": [
                    "Flashcards"
                ],
                "summary": "List flashcards",
                "description": "Cards come back in the order they were added. An empty deck yields [].",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.FlashcardResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Flashcards"
                ],
                "summary": "Add a flashcard",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Card to add",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateFlashcardRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.FlashcardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/decks/{deckID}/flashcards/bulk": {
            "post": {
                "tags": [
                    "Flashcards"
                ],
                "summary": "Add flashcards in bulk",
                "description": "Body is a non-empty JSON array; every card needs front and back.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cards to add",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.CreateFlashcardRequest"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.BulkCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/decks/{deckID}/sessions": {
            "get": {
                "tags": [
                    "Study sessions"
                ],
                "summary": "List study sessions",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.StudySessionResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Study sessions"
                ],
                "summary": "Record a study session",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Deck ID",
                        "name": "deckID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Session totals",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.CreateStudySessionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.StudySessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/flashcards/{flashcardID}": {
            "patch": {
                "tags": [
                    "Flashcards"
                ],
                "summary": "Update a flashcard",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Flashcard ID",
                        "name": "flashcardID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.UpdateFlashcardRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.FlashcardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Flashcards"
                ],
                "summary": "Delete a flashcard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Flashcard ID",
                        "name": "flashcardID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/flashcards/{flashcardID}/study-stats": {
            "patch": {
                "tags": [
                    "Flashcards"
                ],
                "summary": "Record an answer",
                "description": "Increments study_count, and correct_count when is_correct is true; sets last_studied to now.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Flashcard ID",
                        "name": "flashcardID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Answer outcome",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.StudyStatsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.StudyStatsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generate": {
            "post": {
                "tags": [
                    "Generation"
                ],
                "summary": "Generate flashcards",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Source text",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.GenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/api.GeneratedFlashcard"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "model failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/export": {
            "get": {
                "tags": [
                    "Export"
                ],
                "summary": "Export decks",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "json (default) or yaml",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Only export this user's decks",
                        "name": "user_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.ExportData"
                        }
                    }
                }
            }
        },
        "/import": {
            "post": {
                "tags": [
                    "Export"
                ],
                "summary": "Import decks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Owner of the imported decks",
                        "name": "user_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "description": "Export document",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.ExportData"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.ImportResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "user not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.BulkCreateResponse": {
            "type": "object",
            "properties": {
                "added_count": {
                    "type": "integer",
                    "example": 2
                },
                "flashcards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.FlashcardResponse"
                    }
                }
            }
        },
        "api.CreateDeckRequest": {
            "type": "object",
            "required": [
                "name",
                "user_id"
            ],
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Irregular verbs in the present tense"
                },
                "name": {
                    "type": "string",
                    "example": "Spanish verbs"
                },
                "user_id": {
                    "type": "string",
                    "example": "u1v2w3x4y5z6a7b8"
                }
            }
        },
        "api.CreateFlashcardRequest": {
            "type": "object",
            "required": [
                "back",
                "front"
            ],
            "properties": {
                "back": {
                    "type": "string",
                    "example": "to speak"
                },
                "difficulty": {
                    "type": "string",
                    "enum": [
                        "easy",
                        "medium",
                        "hard"
                    ],
                    "example": "medium"
                },
                "front": {
                    "type": "string",
                    "example": "hablar"
                }
            }
        },
        "api.CreateStudySessionRequest": {
            "type": "object",
            "properties": {
                "correct_answers": {
                    "type": "integer",
                    "minimum": 0,
                    "example": 8
                },
                "incorrect_answers": {
                    "type": "integer",
                    "minimum": 0,
                    "example": 2
                },
                "total_time_spent": {
                    "type": "integer",
                    "minimum": 0,
                    "example": 95
                }
            }
        },
        "api.CreateUserRequest": {
            "type": "object",
            "required": [
                "username"
            ],
            "properties": {
                "username": {
                    "type": "string",
                    "example": "ada"
                }
            }
        },
        "api.DeckResponse": {
            "type": "object",
            "properties": {
                "card_count": {
                    "type": "integer",
                    "example": 12
                },
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string",
                    "example": "d1e2c3k4d5e6c7k8"
                },
                "name": {
                    "type": "string",
                    "example": "Spanish verbs"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "api.DeckStatsResponse": {
            "type": "object",
            "properties": {
                "accuracy": {
                    "type": "integer",
                    "example": 70
                },
                "deck_id": {
                    "type": "string"
                },
                "studied_cards": {
                    "type": "integer",
                    "example": 9
                },
                "total_cards": {
                    "type": "integer",
                    "example": 12
                },
                "total_correct": {
                    "type": "integer",
                    "example": 21
                },
                "total_studies": {
                    "type": "integer",
                    "example": 30
                }
            }
        },
        "api.ExportData": {
            "type": "object",
            "properties": {
                "decks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.ExportDeck"
                    }
                },
                "exported_at": {
                    "type": "string"
                },
                "version": {
                    "type": "string",
                    "example": "1.0"
                }
            }
        },
        "api.ExportDeck": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "flashcards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.ExportFlashcard"
                    }
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "api.ExportFlashcard": {
            "type": "object",
            "properties": {
                "back": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "front": {
                    "type": "string"
                }
            }
        },
        "api.FlashcardResponse": {
            "type": "object",
            "properties": {
                "back": {
                    "type": "string",
                    "example": "to speak"
                },
                "created_at": {
                    "type": "string"
                },
                "deck_id": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string",
                    "example": "medium"
                },
                "front": {
                    "type": "string",
                    "example": "hablar"
                },
                "id": {
                    "type": "string"
                },
                "study_stats": {
                    "$ref": "#/definitions/api.StudyStatsResponse"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "api.GenerateRequest": {
            "type": "object",
            "required": [
                "text"
            ],
            "properties": {
                "max_flashcards": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100,
                    "example": 10
                },
                "text": {
                    "type": "string",
                    "example": "Hola means hello. Adiós means goodbye."
                }
            }
        },
        "api.GeneratedFlashcard": {
            "type": "object",
            "properties": {
                "back": {
                    "type": "string",
                    "example": "hello"
                },
                "front": {
                    "type": "string",
                    "example": "hola"
                }
            }
        },
        "api.ImportResult": {
            "type": "object",
            "properties": {
                "decks_created": {
                    "type": "integer"
                },
                "flashcards_created": {
                    "type": "integer"
                }
            }
        },
        "api.StudySessionResponse": {
            "type": "object",
            "properties": {
                "accuracy": {
                    "type": "integer",
                    "example": 80
                },
                "correct_answers": {
                    "type": "integer",
                    "example": 8
                },
                "deck_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "incorrect_answers": {
                    "type": "integer",
                    "example": 2
                },
                "studied_at": {
                    "type": "string"
                },
                "total_time_spent": {
                    "type": "integer",
                    "example": 95
                }
            }
        },
        "api.StudyStatsRequest": {
            "type": "object",
            "required": [
                "is_correct"
            ],
            "properties": {
                "is_correct": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "api.StudyStatsResponse": {
            "type": "object",
            "properties": {
                "accuracy": {
                    "type": "integer",
                    "example": 75
                },
                "correct_count": {
                    "type": "integer",
                    "example": 3
                },
                "last_studied": {
                    "type": "string"
                },
                "study_count": {
                    "type": "integer",
                    "example": 4
                }
            }
        },
        "api.UpdateDeckRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "api.UpdateFlashcardRequest": {
            "type": "object",
            "properties": {
                "back": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string",
                    "enum": [
                        "easy",
                        "medium",
                        "hard"
                    ]
                },
                "front": {
                    "type": "string"
                }
            }
        },
        "api.UserResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string",
                    "example": "u1v2w3x4y5z6a7b8"
                },
                "username": {
                    "type": "string",
                    "example": "ada"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flashdeck API",
	Description:      "Flashcard decks, per-card study stats, study history and AI card generation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
