package response

import (
	"errors"
	"net/http"

	"github.com/kerjahub/hris-portal-go/internal/domain/auth"
	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/domain/schedule"
	"github.com/kerjahub/hris-portal-go/internal/domain/user"
	"github.com/kerjahub/hris-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Checkclock domain errors
	case errors.Is(err, checkclock.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, checkclock.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, checkclock.ErrNotClockedIn):
		Conflict(w, "No open clock-in session today")
	case errors.Is(err, checkclock.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out")
	case errors.Is(err, checkclock.ErrInvalidTransition):
		Conflict(w, "Record has already been decided")
	case errors.Is(err, checkclock.ErrUnauthorized):
		Forbidden(w, "Not allowed to act on this record")

	// Location domain errors
	case errors.Is(err, location.ErrLocationUnavailable):
		ServiceUnavailable(w, "Location is unavailable")
	case errors.Is(err, location.ErrPresetNotFound):
		NotFound(w, "Location preset not found")
	case errors.Is(err, location.ErrPresetExists):
		Conflict(w, "Location preset already exists")

	// Schedule domain errors. Weekly-map violations arrive as
	// validator.ValidationErrors and are handled by the 422 branch above.
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
