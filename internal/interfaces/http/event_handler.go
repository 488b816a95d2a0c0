package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// EventHandler ingesta y consulta de eventos de analítica (views, actions, goals).
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// CreateView godoc
// @Summary      Registrar vista
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateViewRequest  true  "Evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /views [post]
func (h *EventHandler) CreateView(c *fiber.Ctx) error {
	var in dto.CreateViewRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateView(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateAction godoc
// @Summary      Registrar acción
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActionRequest  true  "Evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /actions [post]
func (h *EventHandler) CreateAction(c *fiber.Ctx) error {
	var in dto.CreateActionRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateAction(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateGoal godoc
// @Summary      Registrar objetivo
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGoalRequest  true  "Evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /goals [post]
func (h *EventHandler) CreateGoal(c *fiber.Ctx) error {
	var in dto.CreateGoalRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateGoal(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve el handler de listado para un tipo de evento, más recientes primero.
// @Summary      Listar eventos
// @Tags         analytics
// @Produce      json
// @Param        limit  query  int  false  "Máximo de eventos (por defecto 100)"
// @Success      200    {array}  dto.EventResponse
// @Router       /views [get]
// @Router       /actions [get]
// @Router       /goals [get]
func (h *EventHandler) List(kind entity.EventKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.List(c.UserContext(), kind, c.QueryInt("limit", 0))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}
