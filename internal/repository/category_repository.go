package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saad710/shop-api/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
}

type postgresCategoryRepository struct {
	db *sqlx.DB
}

func NewPostgresCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

func (r *postgresCategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	category := model.Category{Name: name}
	err := r.db.QueryRowxContext(ctx, query, name).Scan(&category.ID)

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *postgresCategoryRepository) Update(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, name, id)
	return err
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	query := `SELECT id, name FROM categories WHERE id = $1`
	err := r.db.GetContext(ctx, &category, query, id)

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *postgresCategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT id, name FROM categories ORDER BY name`
	err := r.db.SelectContext(ctx, &categories, query)

	if err != nil {
		return nil, err
	}

	return categories, nil
}
