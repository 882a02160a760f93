// Package signatures implements the admin CRUD surface for issued license
// keys.
package signatures

import (
	"context"
	"time"

	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/products"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// Feature is the surface the HTTP layer consumes.
type Feature interface {
	GetCount(ctx context.Context, productID int64) (int, error)
	Get(ctx context.Context, productID int64, top, skip int) ([]dto.Signature, error)
	GetByID(ctx context.Context, id int64) (*dto.Signature, error)
	Insert(ctx context.Context, s *dto.Signature) (*dto.Signature, error)
	Update(ctx context.Context, s *dto.Signature) (*dto.Signature, error)
	Delete(ctx context.Context, id int64) error
}

// Repository -.
type Repository interface {
	GetCountByProduct(ctx context.Context, productID int64) (int, error)
	GetByProduct(ctx context.Context, productID int64, top, skip int) ([]entity.Signature, error)
	GetByID(ctx context.Context, id int64) (*entity.Signature, error)
	Insert(ctx context.Context, s *entity.Signature) (int64, error)
	Update(ctx context.Context, s *entity.Signature) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var (
	ErrSignaturesUseCase = apperrors.CreateAppError("SignaturesUseCase")
	ErrDatabase          = sqldb.DatabaseError{App: ErrSignaturesUseCase}
	ErrNotFound          = sqldb.NotFoundError{App: ErrSignaturesUseCase}
)

// UseCase -.
type UseCase struct {
	repo     Repository
	products products.Repository
	log      logger.Interface
	now      func() time.Time
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
func New(repo Repository, productRepo products.Repository, log logger.Interface, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:     repo,
		products: productRepo,
		log:      log,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// GetCount -.
func (uc *UseCase) GetCount(ctx context.Context, productID int64) (int, error) {
	count, err := uc.repo.GetCountByProduct(ctx, productID)
	if err != nil {
		return 0, ErrDatabase.Wrap("GetCount", "uc.repo.GetCountByProduct", err)
	}

	return count, nil
}

// Get lists a product's signatures. Unknown products are a not-found, not an
// empty list.
func (uc *UseCase) Get(ctx context.Context, productID int64, top, skip int) ([]dto.Signature, error) {
	prod, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrDatabase.Wrap("Get", "uc.products.GetByID", err)
	}

	if prod == nil {
		return nil, ErrNotFound.Wrap("Get", "uc.products.GetByID", nil)
	}

	data, err := uc.repo.GetByProduct(ctx, productID, top, skip)
	if err != nil {
		return nil, ErrDatabase.Wrap("Get", "uc.repo.GetByProduct", err)
	}

	d1 := make([]dto.Signature, len(data))

	for i := range data {
		tmpEntity := data[i] // create a new variable to avoid memory aliasing
		d1[i] = *entityToDTO(&tmpEntity)
	}

	return d1, nil
}

// GetByID -.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.Signature, error) {
	data, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDatabase.Wrap("GetByID", "uc.repo.GetByID", err)
	}

	if data == nil {
		return nil, ErrNotFound.Wrap("GetByID", "uc.repo.GetByID", nil)
	}

	return entityToDTO(data), nil
}

// Insert issues a new license key. With the Activate flag the activation
// date is stamped immediately instead of waiting for first validation.
func (uc *UseCase) Insert(ctx context.Context, s *dto.Signature) (*dto.Signature, error) {
	s1 := dtoToEntity(s)

	if s.Activate {
		now := uc.now().UTC().Truncate(time.Second)
		s1.ActivatedAt = &now
	}

	id, err := uc.repo.Insert(ctx, s1)
	if err != nil {
		return nil, ErrDatabase.Wrap("Insert", "uc.repo.Insert", err)
	}

	newSignature, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDatabase.Wrap("Insert", "uc.repo.GetByID", err)
	}

	uc.log.Info("signatures - added signature id=%d product=%d", id, s.ProductID)

	return entityToDTO(newSignature), nil
}

// Update -.
func (uc *UseCase) Update(ctx context.Context, s *dto.Signature) (*dto.Signature, error) {
	updated, err := uc.repo.Update(ctx, dtoToEntity(s))
	if err != nil {
		return nil, ErrDatabase.Wrap("Update", "uc.repo.Update", err)
	}

	if !updated {
		return nil, ErrNotFound.Wrap("Update", "uc.repo.Update", nil)
	}

	updatedSignature, err := uc.repo.GetByID(ctx, s.ID)
	if err != nil {
		return nil, ErrDatabase.Wrap("Update", "uc.repo.GetByID", err)
	}

	uc.log.Info("signatures - updated signature id=%d", s.ID)

	return entityToDTO(updatedSignature), nil
}

// Delete removes the signature and, via schema-level cascades, its
// installations and sessions.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return ErrDatabase.Wrap("Delete", "uc.repo.Delete", err)
	}

	if !deleted {
		return ErrNotFound.Wrap("Delete", "uc.repo.Delete", nil)
	}

	uc.log.Info("signatures - deleted signature id=%d", id)

	return nil
}

func dtoToEntity(s *dto.Signature) *entity.Signature {
	return &entity.Signature{
		ID:                s.ID,
		ProductID:         s.ProductID,
		LicenseKey:        s.LicenseKey,
		Comment:           s.Comment,
		AdditionalContent: s.AdditionalContent,
	}
}

func entityToDTO(s *entity.Signature) *dto.Signature {
	s1 := &dto.Signature{
		ID:                s.ID,
		ProductID:         s.ProductID,
		LicenseKey:        s.LicenseKey,
		Comment:           s.Comment,
		AdditionalContent: s.AdditionalContent,
		Installed:         s.InstallationCount,
	}

	if s.ActivatedAt != nil {
		activated := s.ActivatedAt.Unix()
		s1.ActivationDate = &activated
	}

	return s1
}
