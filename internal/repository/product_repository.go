package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/saad710/shop-api/internal/model"
)

type ProductUpdate struct {
	Title       *string
	Description *string
	Size        *string
	Color       *string
	Price       *float64
	// Categories and Images replace the full link set when non-nil.
	Categories []uuid.UUID
	Images     []string
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, upd ProductUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

type postgresProductRepository struct {
	db *sqlx.DB
}

func NewPostgresProductRepository(db *sqlx.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

func (r *postgresProductRepository) Create(ctx context.Context, product *model.Product) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	query := `INSERT INTO products (title, description, size, color, price) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var newID uuid.UUID
	err = tx.QueryRowxContext(ctx, query,
		product.Title, product.Description, product.Size, product.Color, product.Price,
	).Scan(&newID)
	if err != nil {
		return uuid.Nil, err
	}

	if err := insertImages(ctx, tx, newID, product.Images); err != nil {
		return uuid.Nil, err
	}
	if err := insertCategoryLinks(ctx, tx, newID, product.Categories); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

func (r *postgresProductRepository) Update(ctx context.Context, id uuid.UUID, upd ProductUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var setClauses []string
	var args []interface{}
	argID := 1

	appendClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if upd.Title != nil {
		appendClause("title", *upd.Title)
	}
	if upd.Description != nil {
		appendClause("description", *upd.Description)
	}
	if upd.Size != nil {
		appendClause("size", *upd.Size)
	}
	if upd.Color != nil {
		appendClause("color", *upd.Color)
	}
	if upd.Price != nil {
		appendClause("price", *upd.Price)
	}

	if len(setClauses) > 0 {
		setClauses = append(setClauses, "updated_at = now()")
		query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argID)
		args = append(args, id)

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if upd.Images != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, id); err != nil {
			return err
		}
		if err := insertImages(ctx, tx, id, upd.Images); err != nil {
			return err
		}
	}
	if upd.Categories != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_categories WHERE product_id = $1`, id); err != nil {
			return err
		}
		if err := insertCategoryLinks(ctx, tx, id, upd.Categories); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *postgresProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	query := `SELECT id, title, description, size, color, price, created_at, updated_at FROM products WHERE id = $1`
	if err := r.db.GetContext(ctx, &product, query, id); err != nil {
		return nil, err
	}

	product.Images = []string{}
	imageQuery := `SELECT path FROM product_images WHERE product_id = $1 ORDER BY position`
	if err := r.db.SelectContext(ctx, &product.Images, imageQuery, id); err != nil {
		return nil, err
	}

	product.Categories = []uuid.UUID{}
	categoryQuery := `SELECT category_id FROM product_categories WHERE product_id = $1`
	if err := r.db.SelectContext(ctx, &product.Categories, categoryQuery, id); err != nil {
		return nil, err
	}

	return &product, nil
}

func insertImages(ctx context.Context, tx *sqlx.Tx, productID uuid.UUID, images []string) error {
	query := `INSERT INTO product_images (product_id, position, path) VALUES ($1, $2, $3)`
	for i, path := range images {
		if _, err := tx.ExecContext(ctx, query, productID, i, path); err != nil {
			return err
		}
	}
	return nil
}

func insertCategoryLinks(ctx context.Context, tx *sqlx.Tx, productID uuid.UUID, categories []uuid.UUID) error {
	query := `INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`
	for _, categoryID := range categories {
		if _, err := tx.ExecContext(ctx, query, productID, categoryID); err != nil {
			return err
		}
	}
	return nil
}
