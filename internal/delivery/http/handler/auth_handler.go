package handler

import (
	"snapkitty-api/internal/delivery/http/dto"
	"snapkitty-api/internal/usecase/auth"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authUsecase *auth.AuthUsecase
}

func NewAuthHandler(authUsecase *auth.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// handler register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.authUsecase.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterSuccessResponse{
		Message: "User registered successfully",
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}

// handler login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, user, err := h.authUsecase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginSuccessResponse{
		Message: "User logged in successfully",
		Token:   token,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}

// handler me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	username, _ := c.Locals("username").(string)

	return c.Status(fiber.StatusOK).JSON(dto.MeResponse{
		UserID:   userID,
		Username: username,
	})
}
