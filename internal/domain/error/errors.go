package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientCredits = 4001
	CodeInvalidImage        = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidInstruction  = 4004
	CodeInvalidMode         = 4005
	CodeInvalidTier         = 4006
	CodeUnknownProduct      = 4007
	CodeInvalidRequest      = 4008
	CodeConstraintViolation = 4009
	CodeUserNotFound        = 4040
	CodeImageNotFound       = 4041
	CodeUserLocked          = 4230

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeDatabase         = 5001
	CodeTransformFailed  = 5020
	CodeStorageFailed    = 5030
	CodeIntegrityFailure = 5031
	CodeRefundFailed     = 5040
)

// Base error types
var (
	// ErrInsufficientCredits is returned when a user has neither purchased credits nor daily allowance left
	ErrInsufficientCredits = errors.New("no credits available")

	// ErrInvalidImage is returned when the uploaded bytes cannot be decoded as an image
	ErrInvalidImage = errors.New("invalid image")

	// ErrInvalidUserID is returned when the user ID is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidInstruction is returned when a custom edit instruction is out of bounds
	ErrInvalidInstruction = errors.New("invalid edit instruction")

	// ErrInvalidMode is returned when the enhancement mode is not in the catalog
	ErrInvalidMode = errors.New("invalid enhancement mode")

	// ErrInvalidTier is returned when the resolution tier is unknown
	ErrInvalidTier = errors.New("invalid resolution tier")

	// ErrUnknownProduct is returned when a purchase references a product that has no configured effect
	ErrUnknownProduct = errors.New("invalid product ID")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrImageNotFound is returned when a blob key does not resolve to a stored object
	ErrImageNotFound = errors.New("image not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserLocked is returned when a user is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTransformFailed is returned when the AI gateway fails or returns no usable image
	ErrTransformFailed = errors.New("image transform failed")

	// ErrUnusableOutput is returned when the AI gateway answers with bytes that are not an image
	ErrUnusableOutput = errors.New("gateway returned no usable image")

	// ErrStorageFailed is returned when a blob cannot be written or read back
	ErrStorageFailed = errors.New("storage operation failed")

	// ErrIntegrityMismatch is returned when stored bytes differ from what was written
	ErrIntegrityMismatch = errors.New("stored object does not match uploaded bytes")

	// ErrRefundFailed is returned when a compensating refund could not be applied
	ErrRefundFailed = errors.New("refund failed")
)

// ErrorCode returns standardized error codes for known errors.
// Refund failures win over the storage failure they compensate.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidImage):
		return CodeInvalidImage
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidInstruction):
		return CodeInvalidInstruction
	case errors.Is(err, ErrInvalidMode):
		return CodeInvalidMode
	case errors.Is(err, ErrInvalidTier):
		return CodeInvalidTier
	case errors.Is(err, ErrUnknownProduct):
		return CodeUnknownProduct
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrImageNotFound):
		return CodeImageNotFound
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrRefundFailed):
		return CodeRefundFailed
	case errors.Is(err, ErrTransformFailed):
		return CodeTransformFailed
	case errors.Is(err, ErrIntegrityMismatch):
		return CodeIntegrityFailure
	case errors.Is(err, ErrStorageFailed):
		return CodeStorageFailed
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabase
	default:
		return CodeInternalServer
	}
}

// InsufficientCreditsError provides detailed error information for an eligibility failure
type InsufficientCreditsError struct {
	UserID         string
	Tier           string
	Credits        int
	RemainingToday int
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("no %s credits available for user %s (credits: %d, remaining today: %d)",
		e.Tier, e.UserID, e.Credits, e.RemainingToday)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_credits",
		"user_id":         e.UserID,
		"tier":            e.Tier,
		"credits":         e.Credits,
		"remaining_today": e.RemainingToday,
		"error_code":      CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed eligibility error
func NewInsufficientCreditsError(userID, tier string, credits, remainingToday int) error {
	return &InsufficientCreditsError{
		UserID:         userID,
		Tier:           tier,
		Credits:        credits,
		RemainingToday: remainingToday,
	}
}

// TransformError wraps a failure reported by the AI gateway
type TransformError struct {
	Mode string
	Tier string
	Err  error
}

// Error implements the error interface
func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed for mode %s (tier: %s): %v", e.Mode, e.Tier, e.Err)
}

// Unwrap returns the underlying error
func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is reports every TransformError as ErrTransformFailed
func (e *TransformError) Is(target error) bool {
	return target == ErrTransformFailed
}

// LogFields returns a map of fields for structured logging
func (e *TransformError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transform_error",
		"mode":       e.Mode,
		"tier":       e.Tier,
		"error":      e.Err.Error(),
		"error_code": CodeTransformFailed,
	}
}

// NewTransformError creates a transform error for the given mode and tier
func NewTransformError(mode, tier string, err error) error {
	return &TransformError{Mode: mode, Tier: tier, Err: err}
}

// StorageError represents a failed blob write or read
type StorageError struct {
	Operation string
	Category  string
	Key       string
	Err       error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed (category: %s, key: %s): %v", e.Operation, e.Category, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports every StorageError as ErrStorageFailed
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailed
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"category":   e.Category,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewStorageError creates a detailed storage error
func NewStorageError(operation, category, key string, err error) error {
	return &StorageError{Operation: operation, Category: category, Key: key, Err: err}
}

// RefundError represents a compensating refund that could not be applied
type RefundError struct {
	UserID string
	Tier   string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *RefundError) Error() string {
	return fmt.Sprintf("refund of one %s credit to user %s failed (%s): %v", e.Tier, e.UserID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RefundError) Unwrap() error {
	return e.Err
}

// Is reports every RefundError as ErrRefundFailed
func (e *RefundError) Is(target error) bool {
	return target == ErrRefundFailed
}

// LogFields returns a map of fields for structured logging
func (e *RefundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "refund_error",
		"user_id":    e.UserID,
		"tier":       e.Tier,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": CodeRefundFailed,
	}
}

// NewRefundError creates a detailed refund error
func NewRefundError(userID, tier, reason string, err error) error {
	return &RefundError{UserID: userID, Tier: tier, Reason: reason, Err: err}
}

// IsInsufficientCreditsError checks if the error is an eligibility failure
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsValidationError checks if the error is caused by malformed client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidImage) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidInstruction) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrInvalidTier) ||
		errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrImageNotFound)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsRefundFailedError checks if a compensating refund failed somewhere in the chain
func IsRefundFailedError(err error) bool {
	return errors.Is(err, ErrRefundFailed)
}

// LogFields extracts structured fields from typed errors, falling back to the message
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		fields := withFields.LogFields()
		fields["error"] = err.Error()
		return fields
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
