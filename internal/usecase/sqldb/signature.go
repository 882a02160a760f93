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

var (
	errSignatureNotUnique  = NotUniqueError{App: apperrors.CreateAppError("SignatureRepo")}
	errSignatureForeignKey = ForeignKeyViolationError{App: apperrors.CreateAppError("SignatureRepo")}
)

// SignatureRepo -.
type SignatureRepo struct {
	*db.SQL
	log logger.Interface
}

// NewSignatureRepo -.
func NewSignatureRepo(database *db.SQL, log logger.Interface) *SignatureRepo {
	return &SignatureRepo{database, log}
}

const signatureAdminColumns = `s.id, s.product_id, s.license_key, s.comment, s.additional_content, s.activated_at,
	(SELECT COUNT(*) FROM installations i WHERE i.signature_id = s.id) AS installation_count`

// GetCountByProduct -.
func (r *SignatureRepo) GetCountByProduct(ctx context.Context, productID int64) (int, error) {
	query, args, err := r.Builder.
		Select("COUNT(*)").
		From("signatures").
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.Pool.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// GetByProduct returns a product's signatures ordered by id.
func (r *SignatureRepo) GetByProduct(ctx context.Context, productID int64, top, skip int) ([]entity.Signature, error) {
	if top == 0 {
		top = defaultTop
	}

	query, args, err := r.Builder.
		Select(signatureAdminColumns).
		From("signatures s").
		Where(squirrel.Eq{"s.product_id": productID}).
		OrderBy("s.id").
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

	signatures := []entity.Signature{}

	for rows.Next() {
		s, err := scanSignature(rows.Scan)
		if err != nil {
			return nil, err
		}

		signatures = append(signatures, *s)
	}

	return signatures, rows.Err()
}

// GetByID returns nil when the signature does not exist.
func (r *SignatureRepo) GetByID(ctx context.Context, id int64) (*entity.Signature, error) {
	query, args, err := r.Builder.
		Select(signatureAdminColumns).
		From("signatures s").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	s, err := scanSignature(r.Pool.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}

// Insert -.
func (r *SignatureRepo) Insert(ctx context.Context, s *entity.Signature) (int64, error) {
	var activated *int64
	if s.ActivatedAt != nil {
		unix := s.ActivatedAt.Unix()
		activated = &unix
	}

	builder := r.Builder.
		Insert("signatures").
		Columns("product_id", "license_key", "comment", "additional_content", "activated_at").
		Values(s.ProductID, s.LicenseKey, s.Comment, s.AdditionalContent, activated)

	id, err := r.insertID(ctx, builder)
	if err != nil {
		switch {
		case db.IsNotUnique(err):
			return 0, errSignatureNotUnique.Wrap("Insert", "r.insertID", err)
		case db.IsForeignKeyViolation(err):
			return 0, errSignatureForeignKey.Wrap("Insert", "r.insertID", err)
		default:
			return 0, err
		}
	}

	return id, nil
}

// Update replaces the mutable fields: license key, comment and additional
// content. The activation date is never writable through the admin surface.
func (r *SignatureRepo) Update(ctx context.Context, s *entity.Signature) (bool, error) {
	query, args, err := r.Builder.
		Update("signatures").
		Set("license_key", s.LicenseKey).
		Set("comment", s.Comment).
		Set("additional_content", s.AdditionalContent).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsNotUnique(err) {
			return false, errSignatureNotUnique.Wrap("Update", "r.Pool.ExecContext", err)
		}

		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Delete removes the signature; installations and sessions cascade. Returns
// false when the signature does not exist.
func (r *SignatureRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.Builder.
		Delete("signatures").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.Pool.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *SignatureRepo) insertID(ctx context.Context, builder squirrel.InsertBuilder) (int64, error) {
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

func scanSignature(scan func(dest ...any) error) (*entity.Signature, error) {
	var (
		s         entity.Signature
		activated sql.NullInt64
	)

	if err := scan(&s.ID, &s.ProductID, &s.LicenseKey, &s.Comment, &s.AdditionalContent, &activated, &s.InstallationCount); err != nil {
		return nil, err
	}

	if activated.Valid {
		at := time.Unix(activated.Int64, 0).UTC()
		s.ActivatedAt = &at
	}

	return &s, nil
}
