package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/auth"
	"github.com/jhoicas/Scheduling-api/internal/application/dto"
)

// AuthHandler emite tokens para el operador.
type AuthHandler struct {
	uc *auth.TokenUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.TokenUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Obtener token de operador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "username, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return validation(c, "username y password son requeridos")
	}
	out, err := h.uc.IssueToken(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
