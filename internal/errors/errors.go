package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents the type of error
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeFileSystem
	ErrorTypeConfiguration
	ErrorTypePlatform
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "VALIDATION"
	case ErrorTypeFileSystem:
		return "FILESYSTEM"
	case ErrorTypeConfiguration:
		return "CONFIGURATION"
	case ErrorTypePlatform:
		return "PLATFORM"
	default:
		return "UNKNOWN"
	}
}

// Error codes raised by the exporter
const (
	CodeOutputCreate  = "OUTPUT_CREATE"
	CodeHeaderWrite   = "HEADER_WRITE"
	CodeRowWrite      = "ROW_WRITE"
	CodeOutputClose   = "OUTPUT_CLOSE"
	CodeCatalogOpen   = "CATALOG_OPEN"
	CodeCatalogEnum   = "CATALOG_ENUMERATE"
	CodeConfigLoad    = "CONFIG_LOAD"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeSnapshotWrite = "SNAPSHOT_WRITE"
	CodeDoctorFailed  = "DOCTOR_FAILED"
	CodeConfigExists  = "CONFIG_EXISTS"
	CodeTemplateWrite = "TEMPLATE_WRITE"
)

// LocaleError represents an error with context and suggestions
type LocaleError struct {
	Type        ErrorType         `json:"type"`
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Cause       error             `json:"cause,omitempty"`
	Context     map[string]string `json:"context,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// Error implements the error interface
func (e *LocaleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *LocaleError) Unwrap() error {
	return e.Cause
}

// Is matches another LocaleError with the same type and code
func (e *LocaleError) Is(target error) bool {
	if t, ok := target.(*LocaleError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// ExitCode is the process status for this error. Every fatal error maps to 1.
func (e *LocaleError) ExitCode() int {
	return 1
}

// WithContext adds context to the error
func (e *LocaleError) WithContext(key, value string) *LocaleError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *LocaleError) WithSuggestion(suggestion string) *LocaleError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *LocaleError) WithSuggestions(suggestions []string) *LocaleError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// FormatDetailed returns a detailed error message with context and suggestions
func (e *LocaleError) FormatDetailed() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%s error [%s]: %s\n", e.Type.String(), e.Code, e.Message))

	if len(e.Context) > 0 {
		builder.WriteString("\nContext:\n")
		keys := make([]string, 0, len(e.Context))
		for key := range e.Context {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			builder.WriteString(fmt.Sprintf("   %s: %s\n", key, e.Context[key]))
		}
	}

	if e.Cause != nil {
		builder.WriteString(fmt.Sprintf("\nUnderlying cause: %v\n", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		builder.WriteString("\nSuggestions:\n")
		for _, suggestion := range e.Suggestions {
			builder.WriteString(fmt.Sprintf("   - %s\n", suggestion))
		}
	}

	return builder.String()
}

// NewError creates a new LocaleError
func NewError(errorType ErrorType, code, message string) *LocaleError {
	return &LocaleError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Context: make(map[string]string),
	}
}

// WrapError wraps an existing error with LocaleError
func WrapError(err error, errorType ErrorType, code, message string) *LocaleError {
	return &LocaleError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Cause:   err,
		Context: make(map[string]string),
	}
}

// As returns the first LocaleError in err's chain
func As(err error) (*LocaleError, bool) {
	var le *LocaleError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// Common error constructors

// NewFileSystemError wraps a filesystem failure
func NewFileSystemError(err error, code, message string) *LocaleError {
	return WrapError(err, ErrorTypeFileSystem, code, message).
		WithSuggestions([]string{
			"Check file permissions",
			"Ensure the output directory exists and is writable",
			"Close any program holding the output file open",
		})
}

// NewPlatformError wraps a failure of the platform locale catalog
func NewPlatformError(err error, code, message string) *LocaleError {
	return WrapError(err, ErrorTypePlatform, code, message).
		WithSuggestions([]string{
			"Run on Windows, or pass --catalog with a snapshot file",
			"Run 'localecsv doctor' to check catalog availability",
		})
}

// NewConfigurationError wraps a configuration failure
func NewConfigurationError(err error, code, message string) *LocaleError {
	return WrapError(err, ErrorTypeConfiguration, code, message).
		WithSuggestions([]string{
			"Check the configuration file syntax",
			"Run 'localecsv init --force' to regenerate configuration",
		})
}

// NewValidationError creates a validation error
func NewValidationError(code, message string) *LocaleError {
	return NewError(ErrorTypeValidation, code, message).
		WithSuggestion("Check the input parameters and try again")
}
