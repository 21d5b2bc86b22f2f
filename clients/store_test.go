package clients

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// storeUnderTest lets the same contract run against both implementations.
func storeImplementations(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "clients.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	t.Parallel()

	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := store.Create(ctx, Record{Name: "Margaret Holloway", Advisor: "R. Patel"})
			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, created.ID)

			got, err := store.Get(ctx, created.ID)
			require.NoError(t, err)
			require.Equal(t, created, got)

			_, err = store.Get(ctx, uuid.New())
			var notFound NotFoundError
			require.ErrorAs(t, err, &notFound)

			_, err = store.Create(ctx, Record{})
			var invalid ValidationError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestStoreListPaginates(t *testing.T) {
	t.Parallel()

	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < 5; i++ {
				_, err := store.Create(ctx, Record{Name: "Client " + string(rune('A'+i))})
				require.NoError(t, err)
			}

			page1, total, err := store.List(ctx, 1, 2)
			require.NoError(t, err)
			require.Equal(t, 5, total)
			require.Len(t, page1, 2)
			require.Equal(t, "Client A", page1[0].Name)

			page3, _, err := store.List(ctx, 3, 2)
			require.NoError(t, err)
			require.Len(t, page3, 1)
			require.Equal(t, "Client E", page3[0].Name)

			beyond, total, err := store.List(ctx, 9, 2)
			require.NoError(t, err)
			require.Equal(t, 5, total)
			require.Empty(t, beyond)

			// Out-of-range page arguments fall back to defaults.
			defaulted, _, err := store.List(ctx, 0, 0)
			require.NoError(t, err)
			require.Len(t, defaulted, 5)
		})
	}
}

func TestStoreUpdateReplacesWholesale(t *testing.T) {
	t.Parallel()

	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := store.Create(ctx, Record{Name: "Tom Brierley", Advisor: "S. Okafor", PlanCount: 3})
			require.NoError(t, err)

			// The whole record is replaced: fields left zero become zero.
			updated, err := store.Update(ctx, Record{ID: created.ID, Name: "Tom Brierley", CaseType: "Drawdown Review"})
			require.NoError(t, err)

			got, err := store.Get(ctx, created.ID)
			require.NoError(t, err)
			require.Equal(t, updated, got)
			require.Equal(t, "", got.Advisor)
			require.Equal(t, 0, got.PlanCount)
			require.Equal(t, "Drawdown Review", got.CaseType)

			_, err = store.Update(ctx, Record{ID: uuid.New(), Name: "Ghost"})
			var notFound NotFoundError
			require.ErrorAs(t, err, &notFound)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	for name, store := range storeImplementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := store.Create(ctx, Record{Name: "To Remove"})
			require.NoError(t, err)
			require.NoError(t, store.Delete(ctx, created.ID))

			err = store.Delete(ctx, created.ID)
			var notFound NotFoundError
			require.ErrorAs(t, err, &notFound)
		})
	}
}

func TestSeedDemoAndEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer sqlite.Close()

	empty, err := sqlite.Empty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, SeedDemo(ctx, sqlite))

	empty, err = sqlite.Empty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	records, total, err := sqlite.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, "Margaret Holloway", records[0].Name)
}
