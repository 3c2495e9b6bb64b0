package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// Policy maps error kinds to transport statuses. Authentication and
// authorization failures are distinct kinds; whether an ownership mismatch
// answers 401 or 403 is configurable.
type Policy struct {
	AuthorizationStatus int
}

func DefaultPolicy() Policy {
	return Policy{AuthorizationStatus: http.StatusUnauthorized}
}

func (p Policy) Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		if p.AuthorizationStatus != 0 {
			return p.AuthorizationStatus
		}
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err using the policy. Non-business errors are reported as
// internal errors without leaking their text.
func (p Policy) Respond(c *gin.Context, err error) {
	var be *BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Internal server error.")
		return
	}
	Write(c, p.Status(be.Kind), be.Code, be.Message)
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
