package freetogame_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/infrastructure/freetogame"
)

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":452,"title":"Call Of Duty: Warzone"}]`))
	})
	mux.HandleFunc("/game", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "452" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":0,"status_message":"No game found at that id"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":452}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListGames(t *testing.T) {
	srv := newUpstream(t)
	c := freetogame.NewClient(srv.URL, time.Second)

	out, err := c.ListGames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.JSONEq(t, `[{"id":452,"title":"Call Of Duty: Warzone"}]`, string(out.Body))
}

func TestGetGame(t *testing.T) {
	srv := newUpstream(t)
	c := freetogame.NewClient(srv.URL, time.Second)

	out, err := c.GetGame(context.Background(), "452")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":452}`, string(out.Body))
}

func TestGetGame_EstadoNoExitosoSeReenvia(t *testing.T) {
	srv := newUpstream(t)
	c := freetogame.NewClient(srv.URL, time.Second)

	_, err := c.GetGame(context.Background(), "999")
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.Status)
}

func TestListGames_FalloDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := freetogame.NewClient(base, time.Second).ListGames(context.Background())
	require.Error(t, err)
	var upstream *domain.UpstreamError
	assert.False(t, errors.As(err, &upstream))
}
