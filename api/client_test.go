package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adviceworks/casedesk/clients"
	"github.com/adviceworks/casedesk/server"
)

func newFixture(t *testing.T) (*Client, clients.Store) {
	t.Helper()
	store := clients.NewMemoryStore()
	srv := httptest.NewServer(server.Router(store, zap.NewNop(), 20))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL), store
}

func TestGetClients(t *testing.T) {
	t.Parallel()

	client, store := newFixture(t)
	require.NoError(t, clients.SeedDemo(context.Background(), store))

	page, err := client.GetClients(context.Background(), 1, 2)
	require.NoError(t, err)
	require.True(t, page.Status)
	require.Len(t, page.Data, 2)
	require.Equal(t, 3, page.Total)
}

func TestCreateAndUpdateClient(t *testing.T) {
	t.Parallel()

	client, _ := newFixture(t)

	created, err := client.CreateClient(context.Background(), clients.Record{Name: "New Client"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.CaseType = "Pension Transfer"
	updated, err := client.UpdateClient(context.Background(), created)
	require.NoError(t, err)
	require.Equal(t, "Pension Transfer", updated.CaseType)
}

func TestStatusErrorSurfacesCode(t *testing.T) {
	t.Parallel()

	client, _ := newFixture(t)

	_, err := client.CreateClient(context.Background(), clients.Record{})
	require.Error(t, err)
	var statusErr StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 400, statusErr.Code)
}

func TestUnreachableServer(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1")
	_, err := client.GetClients(context.Background(), 1, 20)
	require.Error(t, err)
}
