package ports

import "context"

// GameCatalog puerto de salida hacia el catálogo externo de juegos free-to-play.
// Las respuestas se reenvían tal cual; un estado no 2xx se devuelve como *domain.UpstreamError.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type GameCatalog interface {
	// ListGames devuelve el cuerpo JSON del listado completo.
	ListGames(ctx context.Context) (*UpstreamResponse, error)
	// GetGame devuelve el cuerpo JSON del detalle de un juego.
	GetGame(ctx context.Context, id string) (*UpstreamResponse, error)
}

// UpstreamResponse respuesta exitosa del upstream, sin decodificar.
type UpstreamResponse struct {
	Status int
	Body   []byte
}
