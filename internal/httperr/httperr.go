package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusFor traduz o kind de negócio em status HTTP.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState, KindNotQueueHead, KindAlreadyTerminal, KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

var messages = map[Kind]string{
	KindNotFound:        "Resource not found.",
	KindInvalidState:    "Operation not allowed in the current state.",
	KindNotQueueHead:    "Only the first client in the queue can be started.",
	KindAlreadyTerminal: "Booking is already closed.",
	KindValidation:      "Invalid data.",
	KindConflict:        "Time slot already taken.",
}

// FromError escreve a resposta para qualquer erro vindo de um use case.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		code := be.Code
		if code == "" {
			code = string(be.Kind)
		}
		Write(c, StatusFor(be.Kind), code, messages[be.Kind])
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":  c.FullPath(),
		"error": err.Error(),
	}).Error("unhandled error")

	Internal(c, "internal_error", "Unexpected error.")
}
