package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProductsTables, downCreateProductsTables)
}

func upCreateProductsTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE products (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  description TEXT NOT NULL,
	  size TEXT,
	  color TEXT,
	  price NUMERIC NOT NULL CHECK (price >= 0),
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE product_images (
	  product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	  position INT NOT NULL,
	  path TEXT NOT NULL,
	  PRIMARY KEY (product_id, position)
	);

	CREATE TABLE product_categories (
	  product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	  category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
	  PRIMARY KEY (product_id, category_id)
	);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateProductsTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS product_categories;
	DROP TABLE IF EXISTS product_images;
	DROP TABLE IF EXISTS products;
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}
