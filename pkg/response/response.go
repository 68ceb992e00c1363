package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages sent to webhook clients.
const (
	MessageStored          = "Event stored successfully"
	MessageIgnored         = "Event received but ignored"
	MessageInvalidPayload  = "Invalid payload"
	MessageInvalidSig      = "Invalid signature"
	MessageForbidden       = "Forbidden"
	MessageTooManyRequests = "Too Many Requests"
	DefaultErrorMessage    = "Internal Server Error"
)

// Resp is the JSON body of every non-list response.
type Resp struct {
	Msg string `json:"msg"`
}

// Message sends status with {"msg": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, Resp{Msg: msg})
}

// Created sends 201 for a stored event.
func Created(c *gin.Context) {
	Message(c, http.StatusCreated, MessageStored)
}

// Ignored sends 200 for an acknowledged but unsupported delivery.
func Ignored(c *gin.Context) {
	Message(c, http.StatusOK, MessageIgnored)
}

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with the invalid payload message.
func BadRequest(c *gin.Context) {
	Message(c, http.StatusBadRequest, MessageInvalidPayload)
}

// InternalError sends 500. err is recorded on the context for the request
// logger and never sent to the client.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	Message(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Message(c, http.StatusUnauthorized, MessageInvalidSig)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Message(c, http.StatusForbidden, MessageForbidden)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Message(c, http.StatusTooManyRequests, MessageTooManyRequests)
}
