package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_Get(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, srv.Client())
	body, err := tr.get(context.Background(), "/api/v1/products", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	require.NotNil(t, got)
	assert.Equal(t, "/api/v1/products", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
}

func TestTransport_CallerHeadersOverrideDefaults(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, srv.Client())
	_, err := tr.get(context.Background(), "/health", http.Header{
		"Content-Type": []string{"application/vnd.cryptotrade+json"},
		"X-Trace":      []string{"abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.cryptotrade+json", got.Get("Content-Type"))
	assert.Equal(t, "abc", got.Get("X-Trace"))
}

func TestTransport_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, srv.Client())
	_, err := tr.get(context.Background(), "/health", nil)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
	assert.Contains(t, terr.Error(), "500")
}

func TestTransport_StructuredErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"product not found","code":"NOT_FOUND"}`))
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, srv.Client())
	_, err := tr.get(context.Background(), "/api/v1/products/nope", nil)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusNotFound, terr.Status)
	require.NotNil(t, terr.Err)
	assert.Contains(t, terr.Err.Error(), "product not found")
}

func TestTransport_InvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	tr := newTransport(srv.URL, srv.Client())
	_, err := tr.get(context.Background(), "/health", nil)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
}

func TestTransport_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tr := newTransport(srv.URL, nil)
	_, err := tr.get(context.Background(), "/health", nil)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
}
