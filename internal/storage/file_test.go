package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, found, err := s.Load(ctx, KeyProducts)
	require.NoError(t, err)
	require.False(t, found, "absent key must not be an error")

	require.NoError(t, s.Save(ctx, KeyProducts, []byte(`[{"id":"prod_001"}]`)))

	data, found, err := s.Load(ctx, KeyProducts)
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `[{"id":"prod_001"}]`, string(data))
}

func TestFileStore_Clear(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, KeyOrders, []byte(`[]`)))
	require.NoError(t, s.Clear(ctx, KeyOrders))

	_, found, err := s.Load(ctx, KeyOrders)
	require.NoError(t, err)
	require.False(t, found)

	// clearing an already-absent key is a no-op
	require.NoError(t, s.Clear(ctx, KeyOrders))
}

func TestFileStore_Overwrite(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, KeySettings, []byte(`{"shopName":"A"}`)))
	require.NoError(t, s.Save(ctx, KeySettings, []byte(`{"shopName":"B"}`)))

	data, found, err := s.Load(ctx, KeySettings)
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"shopName":"B"}`, string(data))
}
