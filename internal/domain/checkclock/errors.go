package checkclock

import "errors"

// Checkclock domain errors
var (
	// Submission errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// Approval errors
	ErrInvalidTransition = errors.New("attendance record has already been approved or rejected")

	// Classification errors
	ErrClassificationInputMissing = errors.New("record is missing fields required for its type")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnauthorized   = errors.New("unauthorized to access this attendance record")
)
