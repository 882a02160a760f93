// Package usecase implements application business logic. Each logic group is
// in its own package.
package usecase

import (
	"time"

	"github.com/license-management-toolkit/keyserve/internal/cache"
	"github.com/license-management-toolkit/keyserve/internal/usecase/licenses"
	"github.com/license-management-toolkit/keyserve/internal/usecase/products"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sessions"
	"github.com/license-management-toolkit/keyserve/internal/usecase/signatures"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
	"github.com/license-management-toolkit/keyserve/pkg/db"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// Usecases -.
type Usecases struct {
	Licenses   licenses.Feature
	Sessions   sessions.Feature
	Products   products.Feature
	Signatures signatures.Feature

	SessionSweeper *sessions.Sweeper
}

// NewUseCases -.
func NewUseCases(database *db.SQL, keyInfoCache *cache.Cache, keepAliveTimeout, sweepInterval time.Duration, log logger.Interface) *Usecases {
	licenseRepo := sqldb.NewLicenseRepo(database, log)
	sessionRepo := sqldb.NewSessionRepo(database, log)
	productRepo := sqldb.NewProductRepo(database, log)
	signatureRepo := sqldb.NewSignatureRepo(database, log)

	return &Usecases{
		Licenses:   licenses.New(licenseRepo, log, keyInfoCache),
		Sessions:   sessions.New(sessionRepo, log),
		Products:   products.New(productRepo, log),
		Signatures: signatures.New(signatureRepo, productRepo, log),

		SessionSweeper: sessions.NewSweeper(sessionRepo, log, keepAliveTimeout, sweepInterval),
	}
}
