package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestFetch_Direct(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		jsonHandler(http.StatusOK, `{"veiculos":[{"modelo":"Onix"}]}`)(w, r)
	}))
	defer srv.Close()

	f := New(Options{Timeout: time.Second})
	doc, err := f.Fetch(context.Background(), srv.URL+"/estoque.json")
	require.NoError(t, err)

	assert.Equal(t, "application/json", accept)
	assert.Equal(t, jsonvalue.Object, doc.Kind())
	modelo, ok := doc.Lookup("veiculos")
	require.True(t, ok)
	assert.Equal(t, 1, modelo.Len())
}

func TestFetch_InvalidURL(t *testing.T) {
	f := New(Options{})

	_, err := f.Fetch(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "URL não fornecida")

	_, err = f.Fetch(context.Background(), "ftp://exemplo.com/a.json")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestFetch_StatusClassification(t *testing.T) {
	cases := []struct {
		status int
		reason Reason
		msg    string
	}{
		{http.StatusNotFound, ReasonNotFound, "URL não encontrada (404)"},
		{http.StatusForbidden, ReasonForbidden, "Acesso negado (403)"},
		{http.StatusInternalServerError, ReasonServer, "Erro interno do servidor (500)"},
		{http.StatusTeapot, ReasonOther, "Erro ao carregar JSON"},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(jsonHandler(tc.status, `{}`))
		f := New(Options{Timeout: time.Second})

		_, err := f.Fetch(context.Background(), srv.URL)
		srv.Close()

		var fe *Error
		require.True(t, errors.As(err, &fe), "status %d", tc.status)
		assert.Equal(t, tc.reason, fe.Reason)
		assert.Equal(t, tc.status, fe.Status)
		assert.Contains(t, fe.Error(), tc.msg)
		assert.ErrorIs(t, err, domain.ErrFetch)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `{}`))
	target := srv.URL
	srv.Close()

	f := New(Options{Timeout: time.Second})
	_, err := f.Fetch(context.Background(), target)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ReasonConnectivity, fe.Reason)
	assert.Contains(t, fe.Error(), "Colar JSON")
}

func TestFetch_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `<html>nope</html>`))
	defer srv.Close()

	f := New(Options{Timeout: time.Second})
	_, err := f.Fetch(context.Background(), srv.URL)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ReasonInvalidJSON, fe.Reason)
	assert.Contains(t, fe.Error(), "Erro ao carregar JSON")
}

func TestFetch_CorsAnywhereRelay(t *testing.T) {
	origin := httptest.NewServer(jsonHandler(http.StatusInternalServerError, `{}`))
	defer origin.Close()
	target := origin.URL + "/dados"

	var relayedPath, requestedWith string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayedPath = r.URL.Path
		requestedWith = r.Header.Get("X-Requested-With")
		jsonHandler(http.StatusOK, `[1,2,3]`)(w, r)
	}))
	defer relay.Close()

	f := New(Options{Timeout: time.Second, UseProxies: true, CorsAnywhereURL: relay.URL + "/"})
	doc, err := f.Fetch(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, 3, doc.Len())
	assert.True(t, strings.HasSuffix(relayedPath, "/dados"))
	assert.Equal(t, "XMLHttpRequest", requestedWith)
}

func TestFetch_AllOriginsRelay(t *testing.T) {
	origin := httptest.NewServer(jsonHandler(http.StatusForbidden, `{}`))
	defer origin.Close()

	var gotURL string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		jsonHandler(http.StatusOK, `{"contents":"{\"marca\":\"Fiat\"}","status":{"http_code":200}}`)(w, r)
	}))
	defer relay.Close()

	f := New(Options{Timeout: time.Second, UseProxies: true, AllOriginsURL: relay.URL + "/get"})
	doc, err := f.Fetch(context.Background(), origin.URL+"/a.json?x=1")
	require.NoError(t, err)

	assert.Equal(t, origin.URL+"/a.json?x=1", gotURL)
	marca, ok := doc.Get("marca")
	require.True(t, ok)
	assert.Equal(t, "Fiat", marca.Text())
}

func TestFetch_RelayStatusKeepsOriginError(t *testing.T) {
	origin := httptest.NewServer(jsonHandler(http.StatusNotFound, `{}`))
	defer origin.Close()
	relay := httptest.NewServer(jsonHandler(http.StatusBadGateway, `{}`))
	defer relay.Close()

	f := New(Options{
		Timeout:         time.Second,
		UseProxies:      true,
		CorsAnywhereURL: relay.URL + "/",
		AllOriginsURL:   relay.URL + "/get",
	})
	_, err := f.Fetch(context.Background(), origin.URL)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ReasonNotFound, fe.Reason)
}

func TestFetch_ProxiesDisabledSkipsRelays(t *testing.T) {
	origin := httptest.NewServer(jsonHandler(http.StatusNotFound, `{}`))
	defer origin.Close()

	hits := 0
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		jsonHandler(http.StatusOK, `[]`)(w, r)
	}))
	defer relay.Close()

	f := New(Options{Timeout: time.Second, UseProxies: false, CorsAnywhereURL: relay.URL + "/"})
	_, err := f.Fetch(context.Background(), origin.URL)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.Zero(t, hits)
}

func TestFetch_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `[]`))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestParseText(t *testing.T) {
	doc, err := ParseText(`  [{"a":1}]  `)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())

	_, err = ParseText("  \n")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "Texto JSON não fornecido")

	_, err = ParseText(`{"a":`)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "JSON inválido")
}
