package usecase

import (
	"context"

	"github.com/jhoicas/resource-api/internal/application/ports"
)

// GameUseCase passthrough al catálogo externo de juegos; sin caché ni reintentos.
type GameUseCase struct {
	catalog ports.GameCatalog
}

// NewGameUseCase construye el caso de uso.
func NewGameUseCase(catalog ports.GameCatalog) *GameUseCase {
	return &GameUseCase{catalog: catalog}
}

// List reenvía el listado de juegos.
func (uc *GameUseCase) List(ctx context.Context) (*ports.UpstreamResponse, error) {
	return uc.catalog.ListGames(ctx)
}

// GetByID reenvía el detalle de un juego.
func (uc *GameUseCase) GetByID(ctx context.Context, id string) (*ports.UpstreamResponse, error) {
	return uc.catalog.GetGame(ctx, id)
}
