package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saad710/shop-api/internal/service"
	"github.com/saad710/shop-api/internal/upload"
)

type UserHandler struct {
	userService service.UserService
	uploads     *upload.Saver
}

func NewUserHandler(userService service.UserService, uploads *upload.Saver) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploads:     uploads,
	}
}

type UpdateUserRequest struct {
	Username *string `form:"username" json:"username" validate:"omitempty,min=1"`
	Email    *string `form:"email" json:"email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	OldPassword     string `form:"oldPassword" json:"oldPassword" validate:"required"`
	NewPassword     string `form:"newPassword" json:"newPassword" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword" validate:"required"`
}

type UserDetailsResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture *string   `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
}

func (h *UserHandler) Details(c *fiber.Ctx) error {
	user, ok := AuthUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return c.Status(fiber.StatusOK).JSON(UserDetailsResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		IsAdmin:        user.IsAdmin,
	})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	req := Body[UpdateUserRequest](c)
	input := service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	}

	if file, ferr := c.FormFile("profilePicture"); ferr == nil {
		picturePath, serr := h.uploads.Save(file)
		if errors.Is(serr, upload.ErrNotImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only image files are allowed."})
		}
		if serr != nil {
			return respondInternal(c, serr)
		}
		input.ProfilePicture = &picturePath
	}

	user, err := h.userService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	req := Body[ChangePasswordRequest](c)

	if req.ConfirmPassword != req.NewPassword {
		return c.Status(fiber.StatusUnprocessableEntity).JSON("Confirm password and New Password must match")
	}

	user, err := h.userService.ChangePassword(c.Context(), id, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid password"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
