// Package sqldb implements the repositories on top of pkg/db and defines the
// persistence error types shared by the use case layers.
package sqldb

import "github.com/license-management-toolkit/keyserve/pkg/apperrors"

// NotFoundError -.
type NotFoundError struct {
	App apperrors.AppError
}

func (e NotFoundError) Error() string {
	return e.App.Error()
}

func (e NotFoundError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "not found"

	return e
}

// DatabaseError -.
type DatabaseError struct {
	App apperrors.AppError
}

func (e DatabaseError) Error() string {
	return e.App.Error()
}

func (e DatabaseError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "database error"

	return e
}

// NotUniqueError -.
type NotUniqueError struct {
	App apperrors.AppError
}

func (e NotUniqueError) Error() string {
	return e.App.Error()
}

func (e NotUniqueError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "already exists"

	return e
}

// ForeignKeyViolationError -.
type ForeignKeyViolationError struct {
	App apperrors.AppError
}

func (e ForeignKeyViolationError) Error() string {
	return e.App.Error()
}

func (e ForeignKeyViolationError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "referenced record does not exist"

	return e
}
