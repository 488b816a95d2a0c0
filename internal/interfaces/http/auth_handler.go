package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resource-api/internal/application/auth"
	"github.com/jhoicas/resource-api/internal/application/dto"
)

// AuthHandler login con email y password.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if !h.uc.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_DISABLED", Message: "JWT_SECRET no configurado"})
	}
	var in dto.LoginRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
