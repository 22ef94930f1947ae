package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Description string      `db:"description" json:"desc"`
	Images      []string    `db:"-" json:"images"`
	Categories  []uuid.UUID `db:"-" json:"categories"`
	Size        *string     `db:"size" json:"size,omitempty"`
	Color       *string     `db:"color" json:"color,omitempty"`
	Price       float64     `db:"price" json:"price"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}
