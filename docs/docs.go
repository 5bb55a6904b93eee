// Package docs registers the OpenAPI document served under /swagger/*.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Greeting",
                "responses": {
                    "200": {"description": "Hello World!", "schema": {"type": "string"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Store health check",
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "string"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/order/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "Order", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.OrderCreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/order/user/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["order"],
                "summary": "List the caller's orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OrderListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/product/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Add a product",
                "parameters": [
                    {"description": "Product", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Product"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/product/get": {
            "get": {
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ProductSummary"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/product/search": {
            "get": {
                "description": "Case-insensitive regular expression match on the title. An empty query returns every product.",
                "produces": ["application/json"],
                "tags": ["product"],
                "summary": "Search products by title",
                "parameters": [
                    {"type": "string", "description": "Title pattern", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Product"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Login user",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SignupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.AddOrderRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "object", "additionalProperties": true},
                "contactDetails": {"type": "string"},
                "orderedItems": {"type": "array", "items": {}},
                "totalPrice": {"type": "number"}
            }
        },
        "handler.AddProductRequest": {
            "type": "object",
            "required": ["price", "rate", "title", "url"],
            "properties": {
                "price": {"type": "number", "minimum": 0},
                "rate": {"type": "number", "maximum": 5, "minimum": 0},
                "title": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/model.User"}
            }
        },
        "handler.OrderCreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "newOrder": {"$ref": "#/definitions/model.Order"}
            }
        },
        "handler.OrderListResponse": {
            "type": "object",
            "properties": {
                "orders": {"type": "array", "items": {"$ref": "#/definitions/model.UserOrder"}}
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.SignupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "newUser": {"$ref": "#/definitions/model.User"}
            }
        },
        "model.Order": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "address": {"type": "object", "additionalProperties": true},
                "contactDetails": {"type": "string"},
                "createdAt": {"type": "string"},
                "orderDate": {"type": "string"},
                "orderedItems": {"type": "array", "items": {}},
                "totalPrice": {"type": "number"},
                "updatedAt": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "model.Product": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "price": {"type": "number"},
                "rate": {"type": "number"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "model.ProductSummary": {
            "type": "object",
            "properties": {
                "price": {"type": "number"},
                "rate": {"type": "number"},
                "title": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "updatedAt": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.UserOrder": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "address": {"type": "object", "additionalProperties": true},
                "contactDetails": {"type": "string"},
                "createdAt": {"type": "string"},
                "orderDate": {"type": "string"},
                "orderedItems": {"type": "array", "items": {}},
                "totalPrice": {"type": "number"},
                "updatedAt": {"type": "string"},
                "user": {"$ref": "#/definitions/model.User"}
            }
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Storefront API",
	Description:      "E-commerce backend with user signup/login, product catalog and JWT protected orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
