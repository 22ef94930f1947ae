package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saad710/shop-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type CategoryRequest struct {
	Name string `form:"name" json:"name" validate:"required"`
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	req := Body[CategoryRequest](c)

	category, err := h.categoryService.Create(c.Context(), req.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category already exists"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID format"})
	}

	req := Body[CategoryRequest](c)

	category, err := h.categoryService.Update(c.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID format"})
	}

	if err := h.categoryService.Delete(c.Context(), id); err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON("successfully deleted")
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.Context())
	if err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}
