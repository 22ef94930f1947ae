package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saad710/shop-api/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type CreateOrderRequest struct {
	Items  json.RawMessage `json:"items" validate:"required"`
	Amount float64         `json:"amount" validate:"omitempty,min=0"`
}

type UpdateOrderRequest struct {
	Items  json.RawMessage `json:"items"`
	Amount *float64        `json:"amount" validate:"omitempty,min=0"`
	Status *string         `json:"status" validate:"omitempty,min=1"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	user, ok := AuthUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token."})
	}

	req := Body[CreateOrderRequest](c)

	order, err := h.orderService.Create(c.Context(), user.ID, service.CreateOrderInput{
		Items:  req.Items,
		Amount: req.Amount,
	})
	if err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID format"})
	}

	req := Body[UpdateOrderRequest](c)

	order, err := h.orderService.Update(c.Context(), id, service.UpdateOrderInput{
		Items:  req.Items,
		Amount: req.Amount,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID format"})
	}

	if err := h.orderService.Delete(c.Context(), id); err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON("Order has been deleted...")
}

func (h *OrderHandler) FindByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	orders, err := h.orderService.ListByUser(c.Context(), userID)
	if err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll(c.Context())
	if err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}
