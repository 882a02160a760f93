// Package licenses implements the validation engine: key lookups, activation
// and expiry handling, installation admission and session starts, all against
// a per-signature critical section.
package licenses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/license-management-toolkit/keyserve/internal/cache"
	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/db"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// Feature is the surface the HTTP layer consumes.
type Feature interface {
	Describe(ctx context.Context, licenseKey string) (*dto.LicenseInfo, error)
	StartSession(ctx context.Context, licenseKey, fingerprint string) (string, error)
}

// Repository is the persistence surface the engine needs.
type Repository interface {
	GetSignatureByKey(ctx context.Context, licenseKey string) (*entity.Signature, *entity.Product, error)
	BeginKeyTx(ctx context.Context, licenseKey string) (sqldb.KeyTx, error)
}

var (
	ErrLicensesUseCase = apperrors.CreateAppError("LicensesUseCase")
	ErrDatabase        = sqldb.DatabaseError{App: ErrLicensesUseCase}
	ErrKeyNotFound     = KeyNotFoundError{App: ErrLicensesUseCase}
	ErrKeyExpired      = KeyExpiredError{App: ErrLicensesUseCase}
	ErrInstallLimit    = InstallLimitError{App: ErrLicensesUseCase}
	ErrSessionLimit    = SessionLimitError{App: ErrLicensesUseCase}
)

// how many times the critical section is retried on transient persistence
// failures before surfacing a database error
const _startSessionRetries = 3

// UseCase -.
type UseCase struct {
	repo  Repository
	log   logger.Interface
	cache *cache.Cache
	now   func() time.Time
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
func New(repo Repository, log logger.Interface, keyInfoCache *cache.Cache, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:  repo,
		log:   log,
		cache: keyInfoCache,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Describe answers a read-only key-info query. No state is mutated, so a
// short-TTL cache may serve repeated lookups of the same key.
func (uc *UseCase) Describe(ctx context.Context, licenseKey string) (*dto.LicenseInfo, error) {
	cacheKey := keyInfoCacheKey(licenseKey)

	if v, ok := uc.cache.Get(cacheKey); ok {
		if info, ok := v.(dto.LicenseInfo); ok {
			return &info, nil
		}
	}

	sig, prod, err := uc.repo.GetSignatureByKey(ctx, licenseKey)
	if err != nil {
		return nil, ErrDatabase.Wrap("Describe", "uc.repo.GetSignatureByKey", err)
	}

	if sig == nil {
		return nil, ErrKeyNotFound.Wrap("Describe", "uc.repo.GetSignatureByKey", nil)
	}

	info := licenseInfo(sig, prod)
	uc.cache.Set(cacheKey, *info)

	return info, nil
}

// StartSession validates a license key for a device and opens a session,
// returning its opaque identifier. Transient persistence failures retry the
// whole critical section; the failure taxonomy passes through untouched.
func (uc *UseCase) StartSession(ctx context.Context, licenseKey, fingerprint string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < _startSessionRetries; attempt++ {
		sessionID, err := uc.startSession(ctx, licenseKey, fingerprint)
		if err == nil {
			return sessionID, nil
		}

		if isValidationFailure(err) {
			return "", err
		}

		if db.IsTransient(err) {
			lastErr = err

			uc.log.Warn("licenses - StartSession - transient failure, retrying: %v", err)

			continue
		}

		return "", ErrDatabase.Wrap("StartSession", "uc.startSession", err)
	}

	return "", ErrDatabase.Wrap("StartSession", "uc.startSession", lastErr)
}

// startSession is one pass over the critical section: resolve the signature,
// stamp first activation or reject an expired key, admit the installation,
// check the session pool and persist the new session atomically.
func (uc *UseCase) startSession(ctx context.Context, licenseKey, fingerprint string) (string, error) {
	tx, err := uc.repo.BeginKeyTx(ctx, licenseKey)
	if err != nil {
		return "", err
	}

	if tx == nil {
		return "", ErrKeyNotFound.Wrap("startSession", "uc.repo.BeginKeyTx", nil)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	sig := tx.Signature()
	prod := tx.Product()
	now := uc.now().UTC().Truncate(time.Second)

	activatedNow := false

	if sig.ActivatedAt == nil {
		// the expiry clock starts on first real use, not on issuance
		if err := tx.SetActivatedAt(ctx, now); err != nil {
			return "", err
		}

		activatedNow = true
	} else if sig.Expired(prod, now) {
		return "", ErrKeyExpired.Wrap("startSession", "sig.Expired", nil)
	}

	inst, err := uc.admitInstallation(ctx, tx, prod, fingerprint, now)
	if err != nil {
		return "", err
	}

	if prod.SessionLimit != nil {
		count, err := tx.CountActiveSessions(ctx)
		if err != nil {
			return "", err
		}

		if count >= *prod.SessionLimit {
			return "", ErrSessionLimit.Wrap("startSession", "tx.CountActiveSessions", nil)
		}
	}

	session := &entity.Session{
		ID:             uuid.NewString(),
		InstallationID: inst.ID,
		CreatedAt:      now,
		LastKeepAlive:  now,
	}

	if err := tx.InsertSession(ctx, session); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	if activatedNow {
		uc.cache.Delete(keyInfoCacheKey(licenseKey))
	}

	uc.log.Info("licenses - session started: signature=%d installation=%d", sig.ID, inst.ID)

	return session.ID, nil
}

// admitInstallation resolves the installation for a fingerprint, admitting a
// new one only while the product's install limit allows it. Idempotent for a
// known fingerprint.
func (uc *UseCase) admitInstallation(ctx context.Context, tx sqldb.KeyTx, prod *entity.Product, fingerprint string, now time.Time) (*entity.Installation, error) {
	inst, err := tx.GetInstallation(ctx, fingerprint)
	if err != nil {
		return nil, err
	}

	if inst != nil {
		return inst, nil
	}

	if prod.InstallLimit != nil {
		count, err := tx.CountInstallations(ctx)
		if err != nil {
			return nil, err
		}

		if count >= *prod.InstallLimit {
			return nil, ErrInstallLimit.Wrap("admitInstallation", "tx.CountInstallations", nil)
		}
	}

	return tx.InsertInstallation(ctx, fingerprint, now)
}

func licenseInfo(sig *entity.Signature, prod *entity.Product) *dto.LicenseInfo {
	info := &dto.LicenseInfo{
		AdditionalContentSignature: sig.AdditionalContent,
		AdditionalContentProduct:   prod.AdditionalContent,
		InstallLimit:               prod.InstallLimit,
		SessionsLimit:              prod.SessionLimit,
	}

	if sig.ActivatedAt != nil {
		activated := sig.ActivatedAt.Unix()
		info.Activated = &activated
	}

	if ends := sig.ExpiresAt(prod); ends != nil {
		unix := ends.Unix()
		info.Ends = &unix
	}

	return info
}

func keyInfoCacheKey(licenseKey string) string {
	return "keyinfo:" + licenseKey
}

// isValidationFailure reports whether err belongs to the client-facing
// failure taxonomy, which is never retried.
func isValidationFailure(err error) bool {
	var (
		notFound     KeyNotFoundError
		expired      KeyExpiredError
		installLimit InstallLimitError
		sessionLimit SessionLimitError
	)

	return errors.As(err, &notFound) || errors.As(err, &expired) ||
		errors.As(err, &installLimit) || errors.As(err, &sessionLimit)
}
