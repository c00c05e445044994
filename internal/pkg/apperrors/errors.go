package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrBadRequest = errors.New("bad request")
)

// Message catalog. Error responses carry exactly one of these as a plain-text body.
const (
	MsgMissingFields         = "Missing fields"
	MsgInvalidToken          = "Invalid Token"
	MsgNoPermission          = "No permission"
	MsgAlreadyExists         = "Already exists"
	MsgInvalidCredentials    = "Invalid credentials"
	MsgInvalidActivationCode = "Invalid activation code"
	MsgInvalidStatus         = "Invalid status"
	MsgInvalidTimeRange      = "Invalid time range"
	MsgInvalidFile           = "Invalid file"
	MsgSlotOccupied          = "Slot occupied"
	MsgNoUser                = "No user found"
	MsgNoEvent               = "No event found"
	MsgNoEvents              = "No events found"
	MsgNoProject             = "No project found"
	MsgNoParticipant         = "No participant found"
	MsgNoInitiator           = "No initiator found"
	MsgNoOwner               = "No owner found"
	MsgNoBooking             = "No booking found"
	MsgNoParkingLot          = "No parking lot found"
	MsgNoSlot                = "No slot found"
	MsgInternal              = "Internal Server Error"
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message extracts the catalog message carried by err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
