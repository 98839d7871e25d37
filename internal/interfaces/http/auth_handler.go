package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/auth"
	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/pkg/validation"
)

// AuthHandler gestisce registrazione, login e profilo.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler costruisce l'handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrazione utente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Dati di registrazione"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenziali"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Profilo dell'utente autenticato
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambio password
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "Password attuale e nuova"
// @Success      200   {object}  dto.OKResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	if err := h.uc.ChangePassword(GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true, Message: "password aggiornata"})
}
