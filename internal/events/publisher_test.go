package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/saad710/shop-api/internal/events"
	"github.com/saad710/shop-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserRegisteredEvent_Marshal(t *testing.T) {
	u := &model.User{ID: uuid.New(), Email: "a@b.com"}
	ev := events.UserRegisteredEvent{
		EventType:    "user.registered",
		UserID:       u.ID,
		Email:        u.Email,
		RegisteredAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "user.registered", decoded["event_type"])
	require.Equal(t, "a@b.com", decoded["email"])
}

func TestOrderCreatedEvent_Marshal(t *testing.T) {
	oid := uuid.New()
	uid := uuid.New()
	ev := events.OrderCreatedEvent{
		EventType: "order.created",
		OrderID:   oid,
		UserID:    uid,
		Amount:    49.99,
		CreatedAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "order.created", decoded["event_type"])
	require.Equal(t, oid.String(), decoded["order_id"])
}
