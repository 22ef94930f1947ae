package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/saad710/shop-api/internal/model"
)

type Publisher interface {
	PublishUserRegistered(user *model.User) error
	PublishOrderCreated(order *model.Order) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (Publisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

type OrderCreatedEvent struct {
	EventType string    `json:"event_type"`
	OrderID   uuid.UUID `json:"order_id"`
	UserID    uuid.UUID `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *NatsPublisher) PublishUserRegistered(user *model.User) error {
	event := UserRegisteredEvent{
		EventType:    "user.registered",
		UserID:       user.ID,
		Email:        user.Email,
		RegisteredAt: time.Now(),
	}

	return p.publish("user.registered", event)
}

func (p *NatsPublisher) PublishOrderCreated(order *model.Order) error {
	event := OrderCreatedEvent{
		EventType: "order.created",
		OrderID:   order.ID,
		UserID:    order.UserID,
		Amount:    order.Amount,
		CreatedAt: order.CreatedAt,
	}

	return p.publish("order.created", event)
}

func (p *NatsPublisher) publish(subject string, event interface{}) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	return nil
}

// NoopPublisher keeps the service running when the broker is unreachable at
// startup; events are simply dropped.
type NoopPublisher struct{}

func (NoopPublisher) PublishUserRegistered(*model.User) error { return nil }
func (NoopPublisher) PublishOrderCreated(*model.Order) error  { return nil }
