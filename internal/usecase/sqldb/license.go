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
	errLicenseNotUnique  = NotUniqueError{App: apperrors.CreateAppError("LicenseRepo")}
	errLicenseForeignKey = ForeignKeyViolationError{App: apperrors.CreateAppError("LicenseRepo")}
)

// LicenseRepo serves the validation engine: consistent signature reads and the
// per-signature transaction every mutating validation step runs inside.
type LicenseRepo struct {
	*db.SQL
	log logger.Interface
}

// NewLicenseRepo -.
func NewLicenseRepo(database *db.SQL, log logger.Interface) *LicenseRepo {
	return &LicenseRepo{database, log}
}

// KeyTx is the per-signature critical section of the validation flow. All
// reads observe the snapshot pinned by the signature row lock; Commit makes
// activation, installation and session writes visible atomically.
type KeyTx interface {
	Signature() *entity.Signature
	Product() *entity.Product
	SetActivatedAt(ctx context.Context, at time.Time) error
	GetInstallation(ctx context.Context, fingerprint string) (*entity.Installation, error)
	CountInstallations(ctx context.Context) (int, error)
	InsertInstallation(ctx context.Context, fingerprint string, at time.Time) (*entity.Installation, error)
	CountActiveSessions(ctx context.Context) (int, error)
	InsertSession(ctx context.Context, s *entity.Session) error
	Commit() error
	Rollback() error
}

const signatureColumns = `s.id, s.product_id, s.license_key, s.comment, s.additional_content, s.activated_at,
	p.id, p.name, p.install_limit, p.session_limit, p.period_seconds, p.additional_content`

// GetSignatureByKey returns the signature and its product, or (nil, nil, nil)
// when the key is unknown. Plain consistent read, no locks.
func (r *LicenseRepo) GetSignatureByKey(ctx context.Context, licenseKey string) (*entity.Signature, *entity.Product, error) {
	query, args, err := r.Builder.
		Select(signatureColumns).
		From("signatures s").
		Join("products p ON p.id = s.product_id").
		Where(squirrel.Eq{"s.license_key": licenseKey}).
		ToSql()
	if err != nil {
		return nil, nil, err
	}

	sig, prod, err := scanSignatureProduct(r.Pool.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, err
	}

	return sig, prod, nil
}

// BeginKeyTx opens the critical section for one license key. Returns
// (nil, nil) when the key is unknown. On PostgreSQL the signature row is
// locked FOR UPDATE so concurrent validations of the same key serialize;
// the SQLite backend serializes writers at BEGIN.
func (r *LicenseRepo) BeginKeyTx(ctx context.Context, licenseKey string) (KeyTx, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}

	builder := r.Builder.
		Select(signatureColumns).
		From("signatures s").
		Join("products p ON p.id = s.product_id").
		Where(squirrel.Eq{"s.license_key": licenseKey})

	if r.IsPostgres() {
		builder = builder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		_ = tx.Rollback()

		return nil, err
	}

	sig, prod, err := scanSignatureProduct(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()

		return nil, nil
	}

	if err != nil {
		_ = tx.Rollback()

		return nil, err
	}

	return &keyTx{tx: tx, sql: r.SQL, sig: sig, prod: prod}, nil
}

type keyTx struct {
	tx   *sql.Tx
	sql  *db.SQL
	sig  *entity.Signature
	prod *entity.Product
	done bool
}

func (t *keyTx) Signature() *entity.Signature {
	return t.sig
}

func (t *keyTx) Product() *entity.Product {
	return t.prod
}

func (t *keyTx) SetActivatedAt(ctx context.Context, at time.Time) error {
	query, args, err := t.sql.Builder.
		Update("signatures").
		Set("activated_at", at.Unix()).
		Where(squirrel.Eq{"id": t.sig.ID, "activated_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	stamped := at.UTC()
	t.sig.ActivatedAt = &stamped

	return nil
}

func (t *keyTx) GetInstallation(ctx context.Context, fingerprint string) (*entity.Installation, error) {
	query, args, err := t.sql.Builder.
		Select("id", "signature_id", "fingerprint", "created_at").
		From("installations").
		Where(squirrel.Eq{"signature_id": t.sig.ID, "fingerprint": fingerprint}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		inst    entity.Installation
		created int64
	)

	err = t.tx.QueryRowContext(ctx, query, args...).Scan(&inst.ID, &inst.SignatureID, &inst.Fingerprint, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	inst.CreatedAt = time.Unix(created, 0).UTC()

	return &inst, nil
}

func (t *keyTx) CountInstallations(ctx context.Context) (int, error) {
	query, args, err := t.sql.Builder.
		Select("COUNT(*)").
		From("installations").
		Where(squirrel.Eq{"signature_id": t.sig.ID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (t *keyTx) InsertInstallation(ctx context.Context, fingerprint string, at time.Time) (*entity.Installation, error) {
	inst := &entity.Installation{
		SignatureID: t.sig.ID,
		Fingerprint: fingerprint,
		CreatedAt:   at.UTC(),
	}

	builder := t.sql.Builder.
		Insert("installations").
		Columns("signature_id", "fingerprint", "created_at").
		Values(t.sig.ID, fingerprint, at.Unix())

	if t.sql.IsPostgres() {
		query, args, err := builder.Suffix("RETURNING id").ToSql()
		if err != nil {
			return nil, err
		}

		if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&inst.ID); err != nil {
			return nil, classify(err)
		}

		return inst, nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}

	inst.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return inst, nil
}

func (t *keyTx) CountActiveSessions(ctx context.Context) (int, error) {
	query, args, err := t.sql.Builder.
		Select("COUNT(*)").
		From("sessions se").
		Join("installations i ON i.id = se.installation_id").
		Where(squirrel.Eq{"i.signature_id": t.sig.ID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (t *keyTx) InsertSession(ctx context.Context, s *entity.Session) error {
	query, args, err := t.sql.Builder.
		Insert("sessions").
		Columns("id", "installation_id", "created_at", "last_keep_alive").
		Values(s.ID, s.InstallationID, s.CreatedAt.Unix(), s.LastKeepAlive.Unix()).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return classify(err)
	}

	return nil
}

func (t *keyTx) Commit() error {
	t.done = true

	return t.tx.Commit()
}

// Rollback is safe to defer; it is a no-op after Commit.
func (t *keyTx) Rollback() error {
	if t.done {
		return nil
	}

	return t.tx.Rollback()
}

func scanSignatureProduct(row *sql.Row) (*entity.Signature, *entity.Product, error) {
	var (
		sig       entity.Signature
		prod      entity.Product
		activated sql.NullInt64
		installs  sql.NullInt64
		sessions  sql.NullInt64
		period    sql.NullInt64
	)

	err := row.Scan(
		&sig.ID, &sig.ProductID, &sig.LicenseKey, &sig.Comment, &sig.AdditionalContent, &activated,
		&prod.ID, &prod.Name, &installs, &sessions, &period, &prod.AdditionalContent,
	)
	if err != nil {
		return nil, nil, err
	}

	if activated.Valid {
		at := time.Unix(activated.Int64, 0).UTC()
		sig.ActivatedAt = &at
	}

	if installs.Valid {
		v := int(installs.Int64)
		prod.InstallLimit = &v
	}

	if sessions.Valid {
		v := int(sessions.Int64)
		prod.SessionLimit = &v
	}

	if period.Valid {
		d := time.Duration(period.Int64) * time.Second
		prod.Period = &d
	}

	return &sig, &prod, nil
}

// classify maps raw driver errors to the typed persistence errors the HTTP
// layer knows how to render.
func classify(err error) error {
	switch {
	case db.IsNotUnique(err):
		return errLicenseNotUnique.Wrap("classify", "IsNotUnique", err)
	case db.IsForeignKeyViolation(err):
		return errLicenseForeignKey.Wrap("classify", "IsForeignKeyViolation", err)
	default:
		return err
	}
}
