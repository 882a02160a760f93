// Package apperrors provides the shared error type wrapped by every layer of
// the application. Each layer embeds an AppError, wraps the failing call into
// it and returns its own typed error so the HTTP layer can map it exhaustively.
package apperrors

import "fmt"

// AppError carries where an error happened and what the client may be told.
type AppError struct {
	Call          string
	Function      string
	Message       string
	OriginalError error
}

// CreateAppError returns a template error for a layer ("LicensesUseCase",
// "SessionRepo", ...). The template is wrapped per call site.
func CreateAppError(call string) AppError {
	return AppError{Call: call}
}

func (e AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s - %s: %v", e.Call, e.Function, e.OriginalError)
	}

	return fmt.Sprintf("%s - %s: %s", e.Call, e.Function, e.Message)
}

func (e AppError) Unwrap() error {
	return e.OriginalError
}

// Wrap records the call site and original error, keeping the layer name.
func (e AppError) Wrap(call, function string, err error) AppError {
	e.Function = call + " - " + function
	e.OriginalError = err

	return e
}

// FriendlyMessage is what gets surfaced to API clients. The raw error chain
// never leaves the server.
func (e AppError) FriendlyMessage() string {
	if e.Message == "" {
		return "request could not be processed"
	}

	return e.Message
}
