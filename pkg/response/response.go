package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format is a flat JSON object carrying a human-readable
// "message" plus operation-specific keys, e.g.
//
//	{"message": "Login successful", "token": "...", "student": {...}}
//
// Errors carry "message" and, for store failures, an "error" detail.

// Payload is the set of extra keys merged beside "message".
type Payload = gin.H

func write(c *gin.Context, status int, message string, data Payload) {
	body := Payload{"message": message}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// ── success ──

// OK writes a 200 response.
func OK(c *gin.Context, message string, data Payload) {
	write(c, http.StatusOK, message, data)
}

// Created writes a 201 response.
func Created(c *gin.Context, message string, data Payload) {
	write(c, http.StatusCreated, message, data)
}

// ── errors ──

// BadRequest writes a 400 validation or conflict failure.
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, message, nil)
}

// Unauthorized writes a 401 authentication failure.
func Unauthorized(c *gin.Context, message string) {
	write(c, http.StatusUnauthorized, message, nil)
}

// Forbidden writes a 403 role failure.
func Forbidden(c *gin.Context, message string) {
	write(c, http.StatusForbidden, message, nil)
}

// NotFound writes a 404 missing-record failure.
func NotFound(c *gin.Context, message string) {
	write(c, http.StatusNotFound, message, nil)
}

// Error writes an arbitrary error status with a message.
func Error(c *gin.Context, status int, message string) {
	write(c, status, message, nil)
}

// InternalError writes a 500 with the underlying error's message passed
// through, matching the store-failure surface of the API.
func InternalError(c *gin.Context, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	write(c, http.StatusInternalServerError, "Server error", Payload{"error": detail})
}
