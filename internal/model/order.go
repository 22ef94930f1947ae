package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Items carries the client-supplied line items verbatim; the server does not
// interpret them beyond requiring a non-empty JSON document.
type Order struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"userId"`
	Items     json.RawMessage `db:"items" json:"items"`
	Amount    float64         `db:"amount" json:"amount"`
	Status    string          `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}
