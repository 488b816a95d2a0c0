// Package freetogame adaptador hacia la API pública de FreeToGame (juegos free-to-play).
// Reenvía cuerpo y estado tal cual; no cachea ni reintenta.
package freetogame

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/resource-api/internal/application/ports"
	"github.com/jhoicas/resource-api/internal/domain"
)

var _ ports.GameCatalog = (*Client)(nil)

// maxBodyBytes el listado completo de juegos ronda los 500 KB.
const maxBodyBytes = 8 << 20

// Client implementa ports.GameCatalog usando net/http.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin barra final, p. ej. https://www.freetogame.com/api.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListGames GET {base}/games.
func (c *Client) ListGames(ctx context.Context) (*ports.UpstreamResponse, error) {
	return c.get(ctx, c.baseURL+"/games")
}

// GetGame GET {base}/game?id={id}.
func (c *Client) GetGame(ctx context.Context, id string) (*ports.UpstreamResponse, error) {
	return c.get(ctx, c.baseURL+"/game?id="+url.QueryEscape(id))
}

func (c *Client) get(ctx context.Context, target string) (*ports.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("freetogame: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("freetogame: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("freetogame: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("freetogame: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Body: body}
	}
	return &ports.UpstreamResponse{Status: resp.StatusCode, Body: body}, nil
}
