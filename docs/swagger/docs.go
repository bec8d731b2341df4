// Package swagger holds the OpenAPI document served at /swagger.
// Regenerate it with swag init after changing handler annotations.
package swagger

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
        "/relics/scan": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Assembles raw OCR scans into relics, assigns tokens and locks, and plans lock store changes.",
                "tags": [
                    "relics"
                ],
                "summary": "Scan Relics",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Raw scans",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/relic.ScanRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Scan report",
                        "schema": {
                            "$ref": "#/definitions/relic.ScanResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
        "/relics/export": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Assembles raw scans and returns the inventory workbook.",
                "tags": [
                    "relics"
                ],
                "summary": "Export Relics",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "description": "Raw scans",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/relic.ScanRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Inventory workbook",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
        "/relics/parse-stat": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Parses one OCR stat line.",
                "tags": [
                    "relics"
                ],
                "summary": "Parse Stat",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Stat line",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/relic.ParseStatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Parsed stat",
                        "schema": {
                            "$ref": "#/definitions/models.Stat"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Error",
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
        "/relics/classify/{name}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Resolves a piece display name to its set and slot.",
                "tags": [
                    "relics"
                ],
                "summary": "Classify Piece",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Piece display name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Classification",
                        "schema": {
                            "$ref": "#/definitions/classify.Classification"
                        }
                    },
                    "404": {
                        "description": "Error",
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
        "/locks": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Lists every stored lock.",
                "tags": [
                    "locks"
                ],
                "summary": "List Locks",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Locks",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.LockRecord"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
        "/locks/{token}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns the lock stored for a token.",
                "tags": [
                    "locks"
                ],
                "summary": "Get Lock",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Relic token (16 hex digits)",
                        "name": "token",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Lock",
                        "schema": {
                            "$ref": "#/definitions/models.LockRecord"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Creates or updates the lock for a token.",
                "tags": [
                    "locks"
                ],
                "summary": "Set Lock",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Relic token (16 hex digits)",
                        "name": "token",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Save flag",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/lock.SaveRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Lock",
                        "schema": {
                            "$ref": "#/definitions/models.LockRecord"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Deletes the lock for a token.",
                "tags": [
                    "locks"
                ],
                "summary": "Delete Lock",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Relic token (16 hex digits)",
                        "name": "token",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Error",
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
        "/icons": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Lists the character catalogue and which icons are loaded.",
                "tags": [
                    "icons"
                ],
                "summary": "List Icons",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Icons",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/icons.IconStatus"
                            }
                        }
                    }
                }
            }
        },
        "/icons/missing": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Lists catalogue names without an icon in storage.",
                "tags": [
                    "icons"
                ],
                "summary": "Missing Icons",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Names",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
        "/icons/orphans": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Lists stored objects that belong to no catalogue name.",
                "tags": [
                    "icons"
                ],
                "summary": "Orphan Icons",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Object keys",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Deletes stored objects that belong to no catalogue name.",
                "tags": [
                    "icons"
                ],
                "summary": "Remove Orphan Icons",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Removed keys",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
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
        "/icons/{name}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns one icon as png.",
                "tags": [
                    "icons"
                ],
                "summary": "Get Icon",
                "produces": [
                    "image/png"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Character name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Icon",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Stores a png or webp icon for a character.",
                "tags": [
                    "icons"
                ],
                "summary": "Upload Icon",
                "consumes": [
                    "image/png",
                    "image/webp"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Character name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Stored icon",
                        "schema": {
                            "$ref": "#/definitions/icons.IconStatus"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Error",
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
        "models.Stat": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "models.Relic": {
            "type": "object",
            "properties": {
                "set_name": {
                    "type": "string"
                },
                "slot": {
                    "type": "string"
                },
                "star": {
                    "type": "integer"
                },
                "level": {
                    "type": "integer"
                },
                "main_stat": {
                    "$ref": "#/definitions/models.Stat"
                },
                "sub_stat_1": {
                    "$ref": "#/definitions/models.Stat"
                },
                "sub_stat_2": {
                    "$ref": "#/definitions/models.Stat"
                },
                "sub_stat_3": {
                    "$ref": "#/definitions/models.Stat"
                },
                "sub_stat_4": {
                    "$ref": "#/definitions/models.Stat"
                },
                "equip": {
                    "type": "string"
                },
                "locked": {
                    "type": "boolean"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "models.LockRecord": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "save": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "classify.Classification": {
            "type": "object",
            "properties": {
                "raw": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "set": {
                    "type": "string"
                },
                "slot": {
                    "type": "string"
                },
                "corrected": {
                    "type": "boolean"
                }
            }
        },
        "relic.RawScan": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "main_stat": {
                    "type": "string"
                },
                "sub_stats": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "star": {
                    "type": "integer"
                },
                "level": {
                    "type": "integer"
                },
                "equip": {
                    "type": "string"
                }
            }
        },
        "relic.ScanRequest": {
            "type": "object",
            "properties": {
                "scans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/relic.RawScan"
                    }
                },
                "record": {
                    "type": "boolean"
                },
                "prune": {
                    "type": "boolean"
                },
                "apply": {
                    "type": "boolean"
                },
                "dry_run": {
                    "type": "boolean"
                }
            }
        },
        "relic.Skipped": {
            "type": "object",
            "properties": {
                "index": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "reconcile.Action": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "reconcile.PlanSummary": {
            "type": "object",
            "properties": {
                "total_items": {
                    "type": "integer"
                },
                "new_relics": {
                    "type": "integer"
                },
                "stale_locks": {
                    "type": "integer"
                },
                "locked_relics": {
                    "type": "integer"
                },
                "duplicate_tokens": {
                    "type": "integer"
                },
                "record_actions": {
                    "type": "integer"
                },
                "prune_actions": {
                    "type": "integer"
                }
            }
        },
        "reconcile.ReconcilePlan": {
            "type": "object",
            "properties": {
                "actions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.Action"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/reconcile.PlanSummary"
                }
            }
        },
        "relic.ScanResponse": {
            "type": "object",
            "properties": {
                "relics": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Relic"
                    }
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/relic.Skipped"
                    }
                },
                "plan": {
                    "$ref": "#/definitions/reconcile.ReconcilePlan"
                },
                "executed": {
                    "type": "integer"
                }
            }
        },
        "relic.ParseStatRequest": {
            "type": "object",
            "properties": {
                "line": {
                    "type": "string"
                }
            }
        },
        "lock.SaveRequest": {
            "type": "object",
            "properties": {
                "save": {
                    "type": "boolean"
                }
            }
        },
        "icons.IconStatus": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "loaded": {
                    "type": "boolean"
                },
                "width": {
                    "type": "integer"
                },
                "height": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Relic Manager API",
	Description:      "API for parsing relic scans and managing relic locks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
