package dto

import "github.com/license-management-toolkit/keyserve/pkg/apperrors"

// NotValidError signals a request body or query that failed binding or
// validation before reaching any use case.
type NotValidError struct {
	App apperrors.AppError
}

func (e NotValidError) Error() string {
	return e.App.Error()
}

func (e NotValidError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "invalid request"

	return e
}
