package licenses

import "github.com/license-management-toolkit/keyserve/pkg/apperrors"

// The validation failure taxonomy. Each kind maps to its own HTTP response,
// so clients can tell an exhausted install slot from an expired key.

// KeyNotFoundError -.
type KeyNotFoundError struct {
	App apperrors.AppError
}

func (e KeyNotFoundError) Error() string {
	return e.App.Error()
}

func (e KeyNotFoundError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "license key not found"

	return e
}

// KeyExpiredError -.
type KeyExpiredError struct {
	App apperrors.AppError
}

func (e KeyExpiredError) Error() string {
	return e.App.Error()
}

func (e KeyExpiredError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "license key expired"

	return e
}

// InstallLimitError -.
type InstallLimitError struct {
	App apperrors.AppError
}

func (e InstallLimitError) Error() string {
	return e.App.Error()
}

func (e InstallLimitError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "installation limit reached"

	return e
}

// SessionLimitError -.
type SessionLimitError struct {
	App apperrors.AppError
}

func (e SessionLimitError) Error() string {
	return e.App.Error()
}

func (e SessionLimitError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "session limit reached"

	return e
}
