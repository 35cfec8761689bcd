package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyforge-backend/internal/generation"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondGenerationError maps pipeline error codes onto the HTTP boundary.
// Caller mistakes, missing rows, credential problems and datastore guidance
// keep their messages; everything that happened inside the model pipeline
// collapses to one retryable message so raw payload fragments never leak out.
func RespondGenerationError(c *gin.Context, subject string, err error) {
	status, code, message := boundaryMessage(subject, err)
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    code,
		},
	})
}

func boundaryMessage(subject string, err error) (int, string, string) {
	code := generation.CodeOf(err)
	switch code {
	case generation.CodeInvalidArgument:
		return http.StatusBadRequest, string(code), generation.MessageOf(err)
	case generation.CodeNotFound:
		return http.StatusNotFound, string(code), generation.MessageOf(err)
	case generation.CodeConfiguration:
		return http.StatusServiceUnavailable, string(code), generation.MessageOf(err)
	case generation.CodePersistence:
		return http.StatusInternalServerError, string(code), generation.MessageOf(err)
	default:
		if code == "" {
			code = generation.CodeInternal
		}
		return http.StatusBadGateway, string(code),
			fmt.Sprintf("Failed to generate %s. Please try again.", subject)
	}
}
