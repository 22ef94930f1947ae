package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/saad710/shop-api/internal/service"
	"github.com/saad710/shop-api/internal/upload"
)

type AuthHandler struct {
	authService service.AuthService
	uploads     *upload.Saver
}

func NewAuthHandler(authService service.AuthService, uploads *upload.Saver) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		uploads:     uploads,
	}
}

type RegisterRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req := Body[RegisterRequest](c)

	file, err := c.FormFile("profilePicture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []FieldError{{Field: "profilePicture", Message: "Profile picture is required."}},
		})
	}

	picturePath, err := h.uploads.Save(file)
	if errors.Is(err, upload.ErrNotImage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only image files are allowed."})
	}
	if err != nil {
		return respondInternal(c, err)
	}

	token, err := h.authService.Register(c.Context(), service.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: &picturePath,
	})

	if err != nil {
		// isUniqueViolation covers the race between the existence check and
		// the insert; both cases read the same to the client.
		if errors.Is(err, service.ErrUserExists) || isUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req := Body[LoginRequest](c)

	token, err := h.authService.Login(c.Context(), req.Email, req.Password)

	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid password"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
