package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/db"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

const defaultTop = 100

var (
	errProductNotUnique  = NotUniqueError{App: apperrors.CreateAppError("ProductRepo")}
	errProductForeignKey = ForeignKeyViolationError{App: apperrors.CreateAppError("ProductRepo")}
)

// ProductRepo -.
type ProductRepo struct {
	*db.SQL
	log logger.Interface
}

// NewProductRepo -.
func NewProductRepo(database *db.SQL, log logger.Interface) *ProductRepo {
	return &ProductRepo{database, log}
}

const productColumns = `p.id, p.name, p.install_limit, p.session_limit, p.period_seconds, p.additional_content,
	(SELECT COUNT(*) FROM signatures s WHERE s.product_id = p.id) AS signature_count`

// GetCount -.
func (r *ProductRepo) GetCount(ctx context.Context) (int, error) {
	query, _, err := r.Builder.
		Select("COUNT(*)").
		From("products").
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.Pool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// Get returns products ordered by id, with their signature counts.
func (r *ProductRepo) Get(ctx context.Context, top, skip int) ([]entity.Product, error) {
	if top == 0 {
		top = defaultTop
	}

	query, args, err := r.Builder.
		Select(productColumns).
		From("products p").
		OrderBy("p.id").
		Limit(uint64(top)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []entity.Product{}

	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}

		products = append(products, *p)
	}

	return products, rows.Err()
}

// GetByID returns nil when the product does not exist.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query, args, err := r.Builder.
		Select(productColumns).
		From("products p").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProduct(r.Pool.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return p, nil
}

// Insert -.
func (r *ProductRepo) Insert(ctx context.Context, p *entity.Product) (int64, error) {
	builder := r.Builder.
		Insert("products").
		Columns("name", "install_limit", "session_limit", "period_seconds", "additional_content").
		Values(p.Name, p.InstallLimit, p.SessionLimit, periodSeconds(p.Period), p.AdditionalContent)

	id, err := r.insertID(ctx, builder)
	if err != nil {
		if db.IsNotUnique(err) {
			return 0, errProductNotUnique.Wrap("Insert", "r.insertID", err)
		}

		return 0, err
	}

	return id, nil
}

// Update replaces every mutable field. Returns false when the product does
// not exist.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) (bool, error) {
	query, args, err := r.Builder.
		Update("products").
		Set("name", p.Name).
		Set("install_limit", p.InstallLimit).
		Set("session_limit", p.SessionLimit).
		Set("period_seconds", periodSeconds(p.Period)).
		Set("additional_content", p.AdditionalContent).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsNotUnique(err) {
			return false, errProductNotUnique.Wrap("Update", "r.Pool.ExecContext", err)
		}

		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Delete removes the product; signatures, installations and sessions cascade
// at the schema level. Returns false when the product does not exist.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.Builder.
		Delete("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return false, errProductForeignKey.Wrap("Delete", "r.Pool.ExecContext", err)
		}

		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// insertID runs an insert and returns the generated id for either backend.
func (r *ProductRepo) insertID(ctx context.Context, builder squirrel.InsertBuilder) (int64, error) {
	if r.IsPostgres() {
		query, args, err := builder.Suffix("RETURNING id").ToSql()
		if err != nil {
			return 0, err
		}

		var id int64
		if err := r.Pool.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}

		return id, nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func scanProduct(scan func(dest ...any) error) (*entity.Product, error) {
	var (
		p        entity.Product
		installs sql.NullInt64
		sessions sql.NullInt64
		period   sql.NullInt64
	)

	if err := scan(&p.ID, &p.Name, &installs, &sessions, &period, &p.AdditionalContent, &p.SignatureCount); err != nil {
		return nil, err
	}

	if installs.Valid {
		v := int(installs.Int64)
		p.InstallLimit = &v
	}

	if sessions.Valid {
		v := int(sessions.Int64)
		p.SessionLimit = &v
	}

	if period.Valid {
		d := time.Duration(period.Int64) * time.Second
		p.Period = &d
	}

	return &p, nil
}

func periodSeconds(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}

	seconds := int64(*d / time.Second)

	return &seconds
}
