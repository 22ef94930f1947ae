package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saad710/shop-api/internal/events"
	"github.com/saad710/shop-api/internal/model"
	"github.com/saad710/shop-api/internal/repository"
)

type CreateOrderInput struct {
	Items  json.RawMessage
	Amount float64
}

type UpdateOrderInput struct {
	Items  json.RawMessage
	Amount *float64
	Status *string
}

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*model.Order, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	publisher events.Publisher
}

func NewOrderService(orderRepo repository.OrderRepository, publisher events.Publisher) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*model.Order, error) {
	order := &model.Order{
		UserID: userID,
		Items:  input.Items,
		Amount: input.Amount,
	}

	newID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	saved, err := s.orderRepo.FindByID(ctx, newID)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishOrderCreated(saved); err != nil {
		slog.Warn("Failed to publish order.created event", "error", err)
	}

	return saved, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*model.Order, error) {
	upd := repository.OrderUpdate{
		Items:  input.Items,
		Amount: input.Amount,
		Status: input.Status,
	}

	if err := s.orderRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

func (s *orderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}
