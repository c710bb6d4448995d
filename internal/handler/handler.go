package handler

import (
	"net/http"

	"github.com/aebalz/mindwell-backend/internal/apperr"
	"github.com/aebalz/mindwell-backend/internal/service"
)

// APIHandler encapsulates all handlers for the application.
type APIHandler struct {
	Users         service.UserServiceInterface
	Wellness      service.WellnessServiceInterface
	Chat          service.ChatServiceInterface
	HealthHandler *HealthHandler
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(users service.UserServiceInterface, wellness service.WellnessServiceInterface,
	chatSvc service.ChatServiceInterface, health *HealthHandler) *APIHandler {
	return &APIHandler{
		Users:         users,
		Wellness:      wellness,
		Chat:          chatSvc,
		HealthHandler: health,
	}
}

// Response is the JSON envelope every endpoint uses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// statusFor maps a service error to its HTTP status code.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor extracts the user-facing message for a service error. Anything
// unclassified gets a generic message so internal detail never leaks.
func messageFor(err error) string {
	return apperr.MessageOf(err, "An unexpected error occurred. Please try again.")
}
