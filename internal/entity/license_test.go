package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/license-management-toolkit/keyserve/internal/entity"
)

func TestSignatureExpiresAt(t *testing.T) {
	t.Parallel()

	activated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	period := time.Hour

	tests := []struct {
		name string
		sig  entity.Signature
		prod *entity.Product
		want *time.Time
	}{
		{
			name: "never activated",
			sig:  entity.Signature{},
			prod: &entity.Product{Period: &period},
			want: nil,
		},
		{
			name: "no period",
			sig:  entity.Signature{ActivatedAt: &activated},
			prod: &entity.Product{},
			want: nil,
		},
		{
			name: "activation plus period",
			sig:  entity.Signature{ActivatedAt: &activated},
			prod: &entity.Product{Period: &period},
			want: func() *time.Time { t := activated.Add(time.Hour); return &t }(),
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.sig.ExpiresAt(tc.prod)

			if tc.want == nil {
				require.Nil(t, got)
			} else {
				require.NotNil(t, got)
				require.True(t, tc.want.Equal(*got))
			}
		})
	}
}

func TestSignatureExpired(t *testing.T) {
	t.Parallel()

	activated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	period := time.Hour
	ends := activated.Add(period)

	sig := entity.Signature{ActivatedAt: &activated}
	prod := &entity.Product{Period: &period}

	// strictly after: the boundary instant itself still validates
	require.False(t, sig.Expired(prod, ends))
	require.True(t, sig.Expired(prod, ends.Add(time.Second)))
	require.False(t, sig.Expired(prod, ends.Add(-time.Second)))

	// never-activated keys cannot expire
	require.False(t, (&entity.Signature{}).Expired(prod, ends.Add(time.Hour)))

	// keys without a period never expire
	require.False(t, sig.Expired(&entity.Product{}, ends.Add(1000*time.Hour)))
}
