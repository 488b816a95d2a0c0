package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/resource-api/internal/application/ports"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/domain"
)

// GameHandler proxy hacia el catálogo free-to-play. Los cuerpos se reenvían sin tocar.
type GameHandler struct {
	uc *usecase.GameUseCase
}

// NewGameHandler construye el handler.
func NewGameHandler(uc *usecase.GameUseCase) *GameHandler {
	return &GameHandler{uc: uc}
}

// List godoc
// @Summary      Listar juegos free-to-play
// @Tags         f2p-games
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  object
// @Router       /f2p-games [get]
func (h *GameHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.UserContext())
	return relay(c, resp, err, "Failed to fetch games")
}

// GetByID godoc
// @Summary      Detalle de un juego free-to-play
// @Tags         f2p-games
// @Produce      json
// @Param        id   path  string  true  "ID del juego"
// @Success      200  {object}  object
// @Failure      404  {object}  object
// @Router       /f2p-games/{id} [get]
func (h *GameHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return relay(c, resp, err, "Failed to fetch game details")
}

// relay reenvía la respuesta del upstream; en error no 2xx conserva el estado con un mensaje fijo.
func relay(c *fiber.Ctx, resp *ports.UpstreamResponse, err error, failMsg string) error {
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return c.Status(upstream.Status).JSON(fiber.Map{"message": failMsg})
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("catálogo de juegos no disponible")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(resp.Status).Send(resp.Body)
}
