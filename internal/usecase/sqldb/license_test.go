package sqldb_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
	"github.com/license-management-toolkit/keyserve/pkg/db"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// the sqldb tests run against a real on-disk sqlite database with the
// embedded migrations applied, so the SQL is exercised for real

func newTestDB(t *testing.T) *db.SQL {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	database, err := db.New(path, sql.Open, db.MaxPoolSize(2), db.EnableForeignKeys(true))
	require.NoError(t, err)

	t.Cleanup(database.Close)

	require.NoError(t, database.Migrate())

	return database
}

func intPtr(v int) *int {
	return &v
}

func durPtr(d time.Duration) *time.Duration {
	return &d
}

func seedProduct(t *testing.T, database *db.SQL) int64 {
	t.Helper()

	repo := sqldb.NewProductRepo(database, logger.New("error"))

	id, err := repo.Insert(context.Background(), &entity.Product{
		Name:              "pro-plan",
		InstallLimit:      intPtr(2),
		SessionLimit:      intPtr(2),
		Period:            durPtr(time.Hour),
		AdditionalContent: "prod-content",
	})
	require.NoError(t, err)

	return id
}

func seedSignature(t *testing.T, database *db.SQL, productID int64) string {
	t.Helper()

	repo := sqldb.NewSignatureRepo(database, logger.New("error"))

	_, err := repo.Insert(context.Background(), &entity.Signature{
		ProductID:         productID,
		LicenseKey:        "AAAA-BBBB-CCCC",
		AdditionalContent: "sig-content",
	})
	require.NoError(t, err)

	return "AAAA-BBBB-CCCC"
}

func TestGetSignatureByKey(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)
	key := seedSignature(t, database, seedProduct(t, database))

	repo := sqldb.NewLicenseRepo(database, logger.New("error"))

	sig, prod, err := repo.GetSignatureByKey(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, sig)
	require.NotNil(t, prod)
	require.Equal(t, key, sig.LicenseKey)
	require.Nil(t, sig.ActivatedAt)
	require.Equal(t, 2, *prod.InstallLimit)
	require.Equal(t, time.Hour, *prod.Period)

	sig, prod, err = repo.GetSignatureByKey(context.Background(), "unknown")
	require.NoError(t, err)
	require.Nil(t, sig)
	require.Nil(t, prod)
}

func TestBeginKeyTx_UnknownKey(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)

	repo := sqldb.NewLicenseRepo(database, logger.New("error"))

	tx, err := repo.BeginKeyTx(context.Background(), "unknown")
	require.NoError(t, err)
	require.Nil(t, tx)
}

func TestKeyTx_ActivationAndSessionFlow(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)
	key := seedSignature(t, database, seedProduct(t, database))

	repo := sqldb.NewLicenseRepo(database, logger.New("error"))
	now := time.Now().UTC().Truncate(time.Second)

	tx, err := repo.BeginKeyTx(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, tx)

	defer func() { _ = tx.Rollback() }()

	require.Nil(t, tx.Signature().ActivatedAt)
	require.NoError(t, tx.SetActivatedAt(context.Background(), now))

	inst, err := tx.GetInstallation(context.Background(), "fp-1")
	require.NoError(t, err)
	require.Nil(t, inst)

	count, err := tx.CountInstallations(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, count)

	inst, err = tx.InsertInstallation(context.Background(), "fp-1", now)
	require.NoError(t, err)
	require.NotZero(t, inst.ID)

	sessions, err := tx.CountActiveSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, sessions)

	require.NoError(t, tx.InsertSession(context.Background(), &entity.Session{
		ID:             "session-1",
		InstallationID: inst.ID,
		CreatedAt:      now,
		LastKeepAlive:  now,
	}))

	require.NoError(t, tx.Commit())

	// everything is visible after commit
	sig, _, err := repo.GetSignatureByKey(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, sig.ActivatedAt)
	require.True(t, now.Equal(*sig.ActivatedAt))

	tx2, err := repo.BeginKeyTx(context.Background(), key)
	require.NoError(t, err)

	defer func() { _ = tx2.Rollback() }()

	existing, err := tx2.GetInstallation(context.Background(), "fp-1")
	require.NoError(t, err)
	require.NotNil(t, existing)
	require.Equal(t, inst.ID, existing.ID)

	sessions, err = tx2.CountActiveSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, sessions)
}

// the activation timestamp is written once; a concurrent second write is a
// silent no-op at the SQL level
func TestKeyTx_SetActivatedAtIsSetOnce(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)
	key := seedSignature(t, database, seedProduct(t, database))

	repo := sqldb.NewLicenseRepo(database, logger.New("error"))
	first := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	second := first.Add(30 * time.Minute)

	tx, err := repo.BeginKeyTx(context.Background(), key)
	require.NoError(t, err)
	require.NoError(t, tx.SetActivatedAt(context.Background(), first))
	require.NoError(t, tx.Commit())

	tx, err = repo.BeginKeyTx(context.Background(), key)
	require.NoError(t, err)
	require.NoError(t, tx.SetActivatedAt(context.Background(), second))
	require.NoError(t, tx.Commit())

	sig, _, err := repo.GetSignatureByKey(context.Background(), key)
	require.NoError(t, err)
	require.True(t, first.Equal(*sig.ActivatedAt))
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)
	key := seedSignature(t, database, seedProduct(t, database))

	licenseRepo := sqldb.NewLicenseRepo(database, logger.New("error"))
	sessionRepo := sqldb.NewSessionRepo(database, logger.New("error"))

	now := time.Now().UTC().Truncate(time.Second)

	tx, err := licenseRepo.BeginKeyTx(context.Background(), key)
	require.NoError(t, err)
	require.NoError(t, tx.SetActivatedAt(context.Background(), now))

	inst, err := tx.InsertInstallation(context.Background(), "fp-1", now)
	require.NoError(t, err)

	stale := now.Add(-10 * time.Minute)

	require.NoError(t, tx.InsertSession(context.Background(), &entity.Session{
		ID: "session-1", InstallationID: inst.ID, CreatedAt: stale, LastKeepAlive: stale,
	}))
	require.NoError(t, tx.Commit())

	// lapsed listing sees the stale session
	lapsed, err := sessionRepo.ListLapsed(context.Background(), now.Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, lapsed, 1)
	require.Equal(t, "session-1", lapsed[0].ID)
	require.True(t, stale.Equal(lapsed[0].LastKeepAlive))

	// a keep-alive moves the timestamp, so the compare-and-close misses
	ok, err := sessionRepo.Touch(context.Background(), "session-1", now)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = sessionRepo.DeleteIfUntouched(context.Background(), "session-1", stale)
	require.NoError(t, err)
	require.False(t, ok)

	// with the observed timestamp it closes
	ok, err = sessionRepo.DeleteIfUntouched(context.Background(), "session-1", now)
	require.NoError(t, err)
	require.True(t, ok)

	// already closed
	ok, err = sessionRepo.Touch(context.Background(), "session-1", now)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = sessionRepo.Delete(context.Background(), "session-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProductRepo_CRUD(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)
	repo := sqldb.NewProductRepo(database, logger.New("error"))

	id, err := repo.Insert(context.Background(), &entity.Product{Name: "basic"})
	require.NoError(t, err)

	// duplicate name
	_, err = repo.Insert(context.Background(), &entity.Product{Name: "basic"})
	require.IsType(t, sqldb.NotUniqueError{}, err)

	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "basic", p.Name)
	require.Nil(t, p.InstallLimit)
	require.Nil(t, p.Period)

	p.Name = "basic-v2"
	p.InstallLimit = intPtr(5)

	ok, err := repo.Update(context.Background(), p)
	require.NoError(t, err)
	require.True(t, ok)

	p, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "basic-v2", p.Name)
	require.Equal(t, 5, *p.InstallLimit)

	count, err := repo.GetCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	ok, err = repo.Delete(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok)

	p, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestSignatureRepo_ForeignKeyAndCascade(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)

	productRepo := sqldb.NewProductRepo(database, logger.New("error"))
	signatureRepo := sqldb.NewSignatureRepo(database, logger.New("error"))

	// unknown product
	_, err := signatureRepo.Insert(context.Background(), &entity.Signature{
		ProductID:  999,
		LicenseKey: "KEY-1",
	})
	require.Error(t, err)

	productID := seedProduct(t, database)

	sigID, err := signatureRepo.Insert(context.Background(), &entity.Signature{
		ProductID:  productID,
		LicenseKey: "KEY-1",
	})
	require.NoError(t, err)

	// deleting the product cascades to its signatures
	ok, err := productRepo.Delete(context.Background(), productID)
	require.NoError(t, err)
	require.True(t, ok)

	sig, err := signatureRepo.GetByID(context.Background(), sigID)
	require.NoError(t, err)
	require.Nil(t, sig)
}
