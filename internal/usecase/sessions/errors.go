package sessions

import "github.com/license-management-toolkit/keyserve/pkg/apperrors"

// SessionNotFoundError signals a keep-alive or end for an unknown or already
// closed session id.
type SessionNotFoundError struct {
	App apperrors.AppError
}

func (e SessionNotFoundError) Error() string {
	return e.App.Error()
}

func (e SessionNotFoundError) Wrap(call, function string, err error) error {
	e.App = e.App.Wrap(call, function, err)
	e.App.Message = "session not found"

	return e
}
