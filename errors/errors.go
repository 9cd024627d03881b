package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrWriteFailure         = fmt.Errorf("write failure")
	ErrSubscriptionFailure  = fmt.Errorf("subscription failure")
	ErrValidationFailure    = fmt.Errorf("validation failure")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrNotParticipant       = fmt.Errorf("participant is not a member of the conversation")
	ErrNotGroupConversation = fmt.Errorf("conversation roster is immutable")
	ErrForbidden            = fmt.Errorf("forbidden")
	ErrInvalidToken         = fmt.Errorf("invalid or expired token")
	ErrInvalidCharacter     = fmt.Errorf("character replacement must be a single rune")
)

// MapToHTTPStatus translates domain errors into HTTP status codes.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrValidationFailure), stderrors.Is(err, ErrNotGroupConversation):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrNotParticipant), stderrors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, ErrConversationNotFound), stderrors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrWriteFailure), stderrors.Is(err, ErrSubscriptionFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
