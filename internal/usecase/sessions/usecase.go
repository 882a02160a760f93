// Package sessions manages the lifecycle of live sessions: keep-alive,
// explicit end, and the background sweep that reclaims slots from clients
// that vanished without ending their session.
package sessions

import (
	"context"
	"time"

	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// Feature is the surface the HTTP layer consumes.
type Feature interface {
	KeepAlive(ctx context.Context, sessionID string) error
	End(ctx context.Context, sessionID string) error
}

// Repository is the persistence surface for session rows. Closing a session
// deletes its row, freeing the slot immediately.
type Repository interface {
	Touch(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListLapsed(ctx context.Context, cutoff time.Time) ([]entity.Session, error)
	DeleteIfUntouched(ctx context.Context, id string, lastKeepAlive time.Time) (bool, error)
}

var (
	ErrSessionsUseCase = apperrors.CreateAppError("SessionsUseCase")
	ErrDatabase        = sqldb.DatabaseError{App: ErrSessionsUseCase}
	ErrSessionNotFound = SessionNotFoundError{App: ErrSessionsUseCase}
)

// UseCase -.
type UseCase struct {
	repo Repository
	log  logger.Interface
	now  func() time.Time
}

// Option -.
type Option func(*UseCase)

// WithClock injects a deterministic time source for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// New -.
func New(repo Repository, log logger.Interface, opts ...Option) *UseCase {
	uc := &UseCase{
		repo: repo,
		log:  log,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// KeepAlive advances the session's liveness timestamp. Does not affect limit
// accounting.
func (uc *UseCase) KeepAlive(ctx context.Context, sessionID string) error {
	ok, err := uc.repo.Touch(ctx, sessionID, uc.now().UTC().Truncate(time.Second))
	if err != nil {
		return ErrDatabase.Wrap("KeepAlive", "uc.repo.Touch", err)
	}

	if !ok {
		return ErrSessionNotFound.Wrap("KeepAlive", "uc.repo.Touch", nil)
	}

	return nil
}

// End closes a session explicitly, freeing its slot immediately.
func (uc *UseCase) End(ctx context.Context, sessionID string) error {
	ok, err := uc.repo.Delete(ctx, sessionID)
	if err != nil {
		return ErrDatabase.Wrap("End", "uc.repo.Delete", err)
	}

	if !ok {
		return ErrSessionNotFound.Wrap("End", "uc.repo.Delete", nil)
	}

	return nil
}
