package licenses_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/license-management-toolkit/keyserve/internal/cache"
	"github.com/license-management-toolkit/keyserve/internal/entity"
	"github.com/license-management-toolkit/keyserve/internal/mocks"
	"github.com/license-management-toolkit/keyserve/internal/usecase/licenses"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

var errTest = errors.New("test error")

func intPtr(v int) *int {
	return &v
}

func durPtr(d time.Duration) *time.Duration {
	return &d
}

// fixed instant all clock-sensitive tests run at
var testNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func licensesTest(t *testing.T, ttl time.Duration) (*licenses.UseCase, *mocks.MockLicensesRepository) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	defer mockCtl.Finish()

	repo := mocks.NewMockLicensesRepository(mockCtl)
	log := logger.New("error")
	u := licenses.New(repo, log, cache.New(ttl), licenses.WithClock(func() time.Time { return testNow }))

	return u, repo
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:                1,
		Name:              "pro-plan",
		InstallLimit:      intPtr(2),
		SessionLimit:      intPtr(2),
		Period:            durPtr(time.Hour),
		AdditionalContent: "product-content",
	}
}

func testSignature(activatedAt *time.Time) *entity.Signature {
	return &entity.Signature{
		ID:                10,
		ProductID:         1,
		LicenseKey:        "AAAA-BBBB-CCCC",
		AdditionalContent: "signature-content",
		ActivatedAt:       activatedAt,
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	activated := testNow.Add(-10 * time.Minute)

	tests := []struct {
		name string
		mock func(repo *mocks.MockLicensesRepository)
		err  error
	}{
		{
			name: "unknown key",
			mock: func(repo *mocks.MockLicensesRepository) {
				repo.EXPECT().GetSignatureByKey(context.Background(), "AAAA-BBBB-CCCC").Return(nil, nil, nil)
			},
			err: licenses.KeyNotFoundError{},
		},
		{
			name: "database failure",
			mock: func(repo *mocks.MockLicensesRepository) {
				repo.EXPECT().GetSignatureByKey(context.Background(), "AAAA-BBBB-CCCC").Return(nil, nil, errTest)
			},
			err: licenses.ErrDatabase,
		},
		{
			name: "activated key",
			mock: func(repo *mocks.MockLicensesRepository) {
				repo.EXPECT().GetSignatureByKey(context.Background(), "AAAA-BBBB-CCCC").
					Return(testSignature(&activated), testProduct(), nil)
			},
			err: nil,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, repo := licensesTest(t, 0)

			tc.mock(repo)

			info, err := useCase.Describe(context.Background(), "AAAA-BBBB-CCCC")

			if tc.err != nil {
				require.IsType(t, tc.err, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, "signature-content", info.AdditionalContentSignature)
			require.Equal(t, "product-content", info.AdditionalContentProduct)
			require.NotNil(t, info.Activated)
			require.Equal(t, activated.Unix(), *info.Activated)
			require.NotNil(t, info.Ends)
			require.Equal(t, activated.Add(time.Hour).Unix(), *info.Ends)
			require.Equal(t, 2, *info.InstallLimit)
			require.Equal(t, 2, *info.SessionsLimit)
		})
	}
}

func TestDescribe_NeverActivated(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	repo.EXPECT().GetSignatureByKey(context.Background(), "AAAA-BBBB-CCCC").
		Return(testSignature(nil), testProduct(), nil)

	info, err := useCase.Describe(context.Background(), "AAAA-BBBB-CCCC")

	require.NoError(t, err)
	require.Nil(t, info.Activated)
	require.Nil(t, info.Ends)
}

func TestDescribe_ServesFromCache(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, time.Minute)

	repo.EXPECT().GetSignatureByKey(context.Background(), "AAAA-BBBB-CCCC").
		Return(testSignature(nil), testProduct(), nil).
		Times(1)

	first, err := useCase.Describe(context.Background(), "AAAA-BBBB-CCCC")
	require.NoError(t, err)

	second, err := useCase.Describe(context.Background(), "AAAA-BBBB-CCCC")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func keyTxMock(t *testing.T, repo *mocks.MockLicensesRepository, sig *entity.Signature, prod *entity.Product) *mocks.MockKeyTx {
	t.Helper()

	mockCtl := gomock.NewController(t)
	tx := mocks.NewMockKeyTx(mockCtl)

	tx.EXPECT().Signature().Return(sig).AnyTimes()
	tx.EXPECT().Product().Return(prod).AnyTimes()
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	repo.EXPECT().BeginKeyTx(context.Background(), sig.LicenseKey).Return(tx, nil)

	return tx
}

func TestStartSession_UnknownKey(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	repo.EXPECT().BeginKeyTx(context.Background(), "AAAA-BBBB-CCCC").Return(nil, nil)

	_, err := useCase.StartSession(context.Background(), "AAAA-BBBB-CCCC", "fp-1")

	require.IsType(t, licenses.KeyNotFoundError{}, err)
}

func TestStartSession_FirstUseActivates(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	sig := testSignature(nil)
	prod := testProduct()
	tx := keyTxMock(t, repo, sig, prod)

	existing := &entity.Installation{ID: 7, SignatureID: sig.ID, Fingerprint: "fp-1"}

	tx.EXPECT().SetActivatedAt(context.Background(), testNow).
		DoAndReturn(func(_ context.Context, at time.Time) error {
			stamped := at
			sig.ActivatedAt = &stamped

			return nil
		})
	tx.EXPECT().GetInstallation(context.Background(), "fp-1").Return(existing, nil)
	tx.EXPECT().CountActiveSessions(context.Background()).Return(0, nil)
	tx.EXPECT().InsertSession(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *entity.Session) error {
			require.Equal(t, int64(7), s.InstallationID)
			require.Equal(t, testNow, s.CreatedAt)
			require.Equal(t, testNow, s.LastKeepAlive)

			return nil
		})
	tx.EXPECT().Commit().Return(nil)

	sessionID, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-1")

	require.NoError(t, err)
	_, parseErr := uuid.Parse(sessionID)
	require.NoError(t, parseErr)
}

func TestStartSession_ExpiredKey(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	// activated two hours ago with a one hour period
	activated := testNow.Add(-2 * time.Hour)
	sig := testSignature(&activated)
	keyTxMock(t, repo, sig, testProduct())

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-1")

	require.IsType(t, licenses.KeyExpiredError{}, err)
}

func TestStartSession_ExpiredExactlyAtBoundaryStillValid(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	// ends exactly now: not yet expired
	activated := testNow.Add(-time.Hour)
	sig := testSignature(&activated)
	prod := testProduct()
	tx := keyTxMock(t, repo, sig, prod)

	existing := &entity.Installation{ID: 7, SignatureID: sig.ID, Fingerprint: "fp-1"}

	tx.EXPECT().GetInstallation(context.Background(), "fp-1").Return(existing, nil)
	tx.EXPECT().CountActiveSessions(context.Background()).Return(0, nil)
	tx.EXPECT().InsertSession(context.Background(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-1")

	require.NoError(t, err)
}

func TestStartSession_InstallLimitReached(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	activated := testNow.Add(-time.Minute)
	sig := testSignature(&activated)
	tx := keyTxMock(t, repo, sig, testProduct())

	tx.EXPECT().GetInstallation(context.Background(), "fp-new").Return(nil, nil)
	tx.EXPECT().CountInstallations(context.Background()).Return(2, nil)

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-new")

	require.IsType(t, licenses.InstallLimitError{}, err)
}

func TestStartSession_KnownFingerprintBypassesInstallLimit(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	activated := testNow.Add(-time.Minute)
	sig := testSignature(&activated)
	tx := keyTxMock(t, repo, sig, testProduct())

	// the fingerprint is already admitted, so the exhausted pool is irrelevant
	existing := &entity.Installation{ID: 3, SignatureID: sig.ID, Fingerprint: "fp-1"}

	tx.EXPECT().GetInstallation(context.Background(), "fp-1").Return(existing, nil)
	tx.EXPECT().CountActiveSessions(context.Background()).Return(0, nil)
	tx.EXPECT().InsertSession(context.Background(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-1")

	require.NoError(t, err)
}

func TestStartSession_AdmitsNewInstallation(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	activated := testNow.Add(-time.Minute)
	sig := testSignature(&activated)
	tx := keyTxMock(t, repo, sig, testProduct())

	admitted := &entity.Installation{ID: 8, SignatureID: sig.ID, Fingerprint: "fp-new", CreatedAt: testNow}

	tx.EXPECT().GetInstallation(context.Background(), "fp-new").Return(nil, nil)
	tx.EXPECT().CountInstallations(context.Background()).Return(1, nil)
	tx.EXPECT().InsertInstallation(context.Background(), "fp-new", testNow).Return(admitted, nil)
	tx.EXPECT().CountActiveSessions(context.Background()).Return(1, nil)
	tx.EXPECT().InsertSession(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *entity.Session) error {
			require.Equal(t, int64(8), s.InstallationID)

			return nil
		})
	tx.EXPECT().Commit().Return(nil)

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-new")

	require.NoError(t, err)
}

func TestStartSession_SessionLimitReached(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	activated := testNow.Add(-time.Minute)
	sig := testSignature(&activated)
	tx := keyTxMock(t, repo, sig, testProduct())

	existing := &entity.Installation{ID: 3, SignatureID: sig.ID, Fingerprint: "fp-1"}

	tx.EXPECT().GetInstallation(context.Background(), "fp-1").Return(existing, nil)
	tx.EXPECT().CountActiveSessions(context.Background()).Return(2, nil)

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-1")

	require.IsType(t, licenses.SessionLimitError{}, err)
}

func TestStartSession_UnlimitedProduct(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	activated := testNow.Add(-time.Minute)
	sig := testSignature(&activated)
	prod := &entity.Product{ID: 1, Name: "unlimited"}
	tx := keyTxMock(t, repo, sig, prod)

	admitted := &entity.Installation{ID: 9, SignatureID: sig.ID, Fingerprint: "fp-new"}

	// no limits configured: no counting at all
	tx.EXPECT().GetInstallation(context.Background(), "fp-new").Return(nil, nil)
	tx.EXPECT().InsertInstallation(context.Background(), "fp-new", testNow).Return(admitted, nil)
	tx.EXPECT().InsertSession(context.Background(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)

	_, err := useCase.StartSession(context.Background(), sig.LicenseKey, "fp-new")

	require.NoError(t, err)
}

func TestStartSession_TransientFailureRetriesThenFails(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	repo.EXPECT().BeginKeyTx(context.Background(), "AAAA-BBBB-CCCC").
		Return(nil, errors.New("database is locked")).
		Times(3)

	_, err := useCase.StartSession(context.Background(), "AAAA-BBBB-CCCC", "fp-1")

	require.IsType(t, licenses.ErrDatabase, err)
}

func TestStartSession_NonTransientFailureDoesNotRetry(t *testing.T) {
	t.Parallel()

	useCase, repo := licensesTest(t, 0)

	repo.EXPECT().BeginKeyTx(context.Background(), "AAAA-BBBB-CCCC").
		Return(nil, errTest).
		Times(1)

	_, err := useCase.StartSession(context.Background(), "AAAA-BBBB-CCCC", "fp-1")

	require.IsType(t, licenses.ErrDatabase, err)
}
