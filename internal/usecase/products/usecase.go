// Package products implements the admin CRUD surface for products, the
// entitlement templates that license keys are issued against.
package products

import (
	"context"
	"time"

	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// Feature is the surface the HTTP layer consumes.
type Feature interface {
	GetCount(ctx context.Context) (int, error)
	Get(ctx context.Context, top, skip int) ([]dto.Product, error)
	GetByID(ctx context.Context, id int64) (*dto.Product, error)
	Insert(ctx context.Context, p *dto.Product) (*dto.Product, error)
	Update(ctx context.Context, p *dto.Product) (*dto.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Repository -.
type Repository interface {
	GetCount(ctx context.Context) (int, error)
	Get(ctx context.Context, top, skip int) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Insert(ctx context.Context, p *entity.Product) (int64, error)
	Update(ctx context.Context, p *entity.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var (
	ErrProductsUseCase = apperrors.CreateAppError("ProductsUseCase")
	ErrDatabase        = sqldb.DatabaseError{App: ErrProductsUseCase}
	ErrNotFound        = sqldb.NotFoundError{App: ErrProductsUseCase}
)

// UseCase -.
type UseCase struct {
	repo Repository
	log  logger.Interface
}

// New -.
func New(repo Repository, log logger.Interface) *UseCase {
	return &UseCase{
		repo: repo,
		log:  log,
	}
}

// GetCount -.
func (uc *UseCase) GetCount(ctx context.Context) (int, error) {
	count, err := uc.repo.GetCount(ctx)
	if err != nil {
		return 0, ErrDatabase.Wrap("GetCount", "uc.repo.GetCount", err)
	}

	return count, nil
}

// Get -.
func (uc *UseCase) Get(ctx context.Context, top, skip int) ([]dto.Product, error) {
	data, err := uc.repo.Get(ctx, top, skip)
	if err != nil {
		return nil, ErrDatabase.Wrap("Get", "uc.repo.Get", err)
	}

	d1 := make([]dto.Product, len(data))

	for i := range data {
		tmpEntity := data[i] // create a new variable to avoid memory aliasing
		d1[i] = *entityToDTO(&tmpEntity)
	}

	return d1, nil
}

// GetByID -.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.Product, error) {
	data, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDatabase.Wrap("GetByID", "uc.repo.GetByID", err)
	}

	if data == nil {
		return nil, ErrNotFound.Wrap("GetByID", "uc.repo.GetByID", nil)
	}

	return entityToDTO(data), nil
}

// Insert -.
func (uc *UseCase) Insert(ctx context.Context, p *dto.Product) (*dto.Product, error) {
	id, err := uc.repo.Insert(ctx, dtoToEntity(p))
	if err != nil {
		return nil, ErrDatabase.Wrap("Insert", "uc.repo.Insert", err)
	}

	newProduct, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDatabase.Wrap("Insert", "uc.repo.GetByID", err)
	}

	uc.log.Info("products - added product %q id=%d", p.Name, id)

	return entityToDTO(newProduct), nil
}

// Update -.
func (uc *UseCase) Update(ctx context.Context, p *dto.Product) (*dto.Product, error) {
	updated, err := uc.repo.Update(ctx, dtoToEntity(p))
	if err != nil {
		return nil, ErrDatabase.Wrap("Update", "uc.repo.Update", err)
	}

	if !updated {
		return nil, ErrNotFound.Wrap("Update", "uc.repo.Update", nil)
	}

	updatedProduct, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, ErrDatabase.Wrap("Update", "uc.repo.GetByID", err)
	}

	uc.log.Info("products - updated product %q id=%d", p.Name, p.ID)

	return entityToDTO(updatedProduct), nil
}

// Delete removes the product and, via schema-level cascades, all of its
// signatures, installations and sessions.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return ErrDatabase.Wrap("Delete", "uc.repo.Delete", err)
	}

	if !deleted {
		return ErrNotFound.Wrap("Delete", "uc.repo.Delete", nil)
	}

	uc.log.Info("products - deleted product id=%d", id)

	return nil
}

func dtoToEntity(p *dto.Product) *entity.Product {
	p1 := &entity.Product{
		ID:                p.ID,
		Name:              p.Name,
		InstallLimit:      p.SigInstallLimit,
		SessionLimit:      p.SigSessionsLimit,
		AdditionalContent: p.AdditionalContent,
	}

	if p.SigPeriod != nil {
		d := time.Duration(*p.SigPeriod) * time.Second
		p1.Period = &d
	}

	return p1
}

func entityToDTO(p *entity.Product) *dto.Product {
	p1 := &dto.Product{
		ID:                p.ID,
		Name:              p.Name,
		SigInstallLimit:   p.InstallLimit,
		SigSessionsLimit:  p.SessionLimit,
		AdditionalContent: p.AdditionalContent,
		Signatures:        p.SignatureCount,
	}

	if p.Period != nil {
		seconds := int64(*p.Period / time.Second)
		p1.SigPeriod = &seconds
	}

	return p1
}
