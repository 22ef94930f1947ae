package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saad710/shop-api/internal/model"
)

type OrderUpdate struct {
	Items  json.RawMessage
	Amount *float64
	Status *string
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, upd OrderUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
}

type postgresOrderRepository struct {
	db *sqlx.DB
}

func NewPostgresOrderRepository(db *sqlx.DB) OrderRepository {
	return &postgresOrderRepository{db: db}
}

func (r *postgresOrderRepository) Create(ctx context.Context, order *model.Order) (uuid.UUID, error) {
	query := `INSERT INTO orders (user_id, items, amount) VALUES ($1, $2, $3) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, order.UserID, []byte(order.Items), order.Amount).Scan(&newID)

	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

func (r *postgresOrderRepository) Update(ctx context.Context, id uuid.UUID, upd OrderUpdate) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	if upd.Items != nil {
		setClauses = append(setClauses, fmt.Sprintf("items = $%d", argID))
		args = append(args, []byte(upd.Items))
		argID++
	}
	if upd.Amount != nil {
		setClauses = append(setClauses, fmt.Sprintf("amount = $%d", argID))
		args = append(args, *upd.Amount)
		argID++
	}
	if upd.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argID))
		args = append(args, *upd.Status)
		argID++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	query := `SELECT id, user_id, items, amount, status, created_at, updated_at FROM orders WHERE id = $1`
	err := r.db.GetContext(ctx, &order, query, id)

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *postgresOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT id, user_id, items, amount, status, created_at, updated_at FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &orders, query, userID)

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *postgresOrderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT id, user_id, items, amount, status, created_at, updated_at FROM orders ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &orders, query)

	if err != nil {
		return nil, err
	}

	return orders, nil
}
