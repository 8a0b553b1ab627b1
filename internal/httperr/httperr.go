package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool     `json:"success"`
	Code    string   `json:"error_code"`
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string, details ...string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, code, message string, details ...string) {
	Write(c, http.StatusBadRequest, code, message, details...)
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

// StatusFor traduz o tipo de erro para o status HTTP.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict, KindDuplicateKey:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond escreve o envelope de erro. Erros que não são de negócio viram 500
// com a mensagem genérica informada em fallback.
func Respond(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	var be BusinessError
	if errors.As(err, &be) {
		message := be.Message
		if message == "" {
			message = be.Code
		}
		Write(c, StatusFor(be.Kind), be.Code, message, be.Details...)
		return
	}

	slog.Error("request failed",
		"path", c.FullPath(),
		"code", fallbackCode,
		"error", err,
	)
	Internal(c, fallbackCode, fallbackMessage)
}
