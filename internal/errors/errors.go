package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code of an
// existing AppError in the chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes. The pipeline surfaces every failure as an AppError
// carrying one of these.
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInputRead       = "INPUT_READ"
	CodeSchemaLoad      = "SCHEMA_LOAD"
	CodeStatComputation = "STAT_COMPUTATION"
	CodePersistence     = "PERSISTENCE"
	CodeIngestion       = "INGESTION"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InputRead marks a malformed or missing dataset file.
func InputRead(message string, cause error) *AppError {
	return &AppError{Code: CodeInputRead, Message: message, Cause: cause}
}

// SchemaLoad marks a malformed schema file.
func SchemaLoad(message string, cause error) *AppError {
	return &AppError{Code: CodeSchemaLoad, Message: message, Cause: cause}
}

// StatComputation marks a degenerate statistical computation, e.g. a
// zero-length column during a drift test.
func StatComputation(message string, cause error) *AppError {
	return &AppError{Code: CodeStatComputation, Message: message, Cause: cause}
}

// Persistence marks a directory or file write failure.
func Persistence(message string, cause error) *AppError {
	return &AppError{Code: CodePersistence, Message: message, Cause: cause}
}

// Ingestion marks a document-store export failure.
func Ingestion(message string, cause error) *AppError {
	return &AppError{Code: CodeIngestion, Message: message, Cause: cause}
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
