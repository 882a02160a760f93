package sessions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/license-management-toolkit/keyserve/internal/mocks"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sessions"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

var errTest = errors.New("test error")

// fixed instant all clock-sensitive tests run at
var testNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func sessionsTest(t *testing.T) (*sessions.UseCase, *mocks.MockSessionsRepository) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	defer mockCtl.Finish()

	repo := mocks.NewMockSessionsRepository(mockCtl)
	log := logger.New("error")
	u := sessions.New(repo, log, sessions.WithClock(func() time.Time { return testNow }))

	return u, repo
}

func TestKeepAlive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mock func(repo *mocks.MockSessionsRepository)
		err  error
	}{
		{
			name: "touch succeeds",
			mock: func(repo *mocks.MockSessionsRepository) {
				repo.EXPECT().Touch(context.Background(), "session-1", testNow).Return(true, nil)
			},
			err: nil,
		},
		{
			name: "unknown session",
			mock: func(repo *mocks.MockSessionsRepository) {
				repo.EXPECT().Touch(context.Background(), "session-1", testNow).Return(false, nil)
			},
			err: sessions.SessionNotFoundError{},
		},
		{
			name: "database failure",
			mock: func(repo *mocks.MockSessionsRepository) {
				repo.EXPECT().Touch(context.Background(), "session-1", testNow).Return(false, errTest)
			},
			err: sessions.ErrDatabase,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, repo := sessionsTest(t)

			tc.mock(repo)

			err := useCase.KeepAlive(context.Background(), "session-1")

			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.IsType(t, tc.err, err)
			}
		})
	}
}

func TestEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mock func(repo *mocks.MockSessionsRepository)
		err  error
	}{
		{
			name: "delete succeeds",
			mock: func(repo *mocks.MockSessionsRepository) {
				repo.EXPECT().Delete(context.Background(), "session-1").Return(true, nil)
			},
			err: nil,
		},
		{
			name: "unknown session",
			mock: func(repo *mocks.MockSessionsRepository) {
				repo.EXPECT().Delete(context.Background(), "session-1").Return(false, nil)
			},
			err: sessions.SessionNotFoundError{},
		},
		{
			name: "database failure",
			mock: func(repo *mocks.MockSessionsRepository) {
				repo.EXPECT().Delete(context.Background(), "session-1").Return(false, errTest)
			},
			err: sessions.ErrDatabase,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			useCase, repo := sessionsTest(t)

			tc.mock(repo)

			err := useCase.End(context.Background(), "session-1")

			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.IsType(t, tc.err, err)
			}
		})
	}
}

// ending a session twice reports not found the second time, since the slot is
// already free
func TestEnd_Twice(t *testing.T) {
	t.Parallel()

	useCase, repo := sessionsTest(t)

	gomock.InOrder(
		repo.EXPECT().Delete(context.Background(), "session-1").Return(true, nil),
		repo.EXPECT().Delete(context.Background(), "session-1").Return(false, nil),
	)

	require.NoError(t, useCase.End(context.Background(), "session-1"))
	require.IsType(t, sessions.SessionNotFoundError{}, useCase.End(context.Background(), "session-1"))
}
