package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adviceworks/casedesk/clients"
)

func newTestServer(t *testing.T) (*httptest.Server, clients.Store) {
	t.Helper()
	store := clients.NewMemoryStore()
	srv := httptest.NewServer(Router(store, zap.NewNop(), 20))
	t.Cleanup(srv.Close)
	return srv, store
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListClientsEnvelope(t *testing.T) {
	t.Parallel()

	srv, store := newTestServer(t)
	require.NoError(t, clients.SeedDemo(context.Background(), store))

	resp, err := http.Get(srv.URL + "/v1/clients?page=1&page_size=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope ListEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Status)
	require.Len(t, envelope.Data, 2)
	require.Equal(t, 3, envelope.Total)
	require.Equal(t, "Margaret Holloway", envelope.Data[0].Name)
}

func TestCreateGetUpdateDelete(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	body, _ := json.Marshal(clients.Record{Name: "New Client", Advisor: "R. Patel"})
	resp, err := http.Post(srv.URL+"/v1/clients", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	var created clients.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/v1/clients/" + created.ID.String())
	require.NoError(t, err)
	var fetched clients.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	require.Equal(t, created, fetched)

	created.CaseType = "Pension Transfer"
	body, _ = json.Marshal(created)
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/v1/clients/"+created.ID.String(), bytes.NewReader(body))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/v1/clients/"+created.ID.String(), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/v1/clients/" + created.ID.String())
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBadRequests(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/clients/not-a-uuid")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/v1/clients", "application/json", bytes.NewReader([]byte(`{"name":""}`)))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
