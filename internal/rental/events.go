package rental

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// 租约生命周期事件（发给下游：通知、结算、报表）。
const (
	EventRentalCreated   = "RentalCreated"
	EventRentalStarted   = "RentalStarted"
	EventRentalCompleted = "RentalCompleted"
	EventRentalCancelled = "RentalCancelled"
)

const TopicRentalLifecycle = "rental.lifecycle"

// EventPublisher 由 Service 在事务提交之后调用。
// 发布失败不影响已提交的事实：事务是唯一事实源，事件只能丢、不能先于提交发出。
type EventPublisher interface {
	PublishRentalEvent(ctx context.Context, eventType string, r *Rental)
}

// Envelope 事件信封（JSON）。
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

// RentalEventPayload 各生命周期事件共用的 payload。
type RentalEventPayload struct {
	RentalID        string `json:"rental_id"`
	VehicleID       string `json:"vehicle_id"`
	UserID          string `json:"user_id"`
	Status          string `json:"status"`
	StartDate       string `json:"start_date"` // YYYY-MM-DD
	EndDate         string `json:"end_date"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Currency        string `json:"currency"`
}

// KafkaPublisher 异步 Kafka 发布器。
// Writer 配 Async + Hash balancer：以 rental_id 作 key，同一租约的事件保序。
type KafkaPublisher struct {
	w        *kafka.Writer
	producer string
}

func NewKafkaPublisher(brokers []string, producer string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicRentalLifecycle,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
		producer: producer,
	}
}

func (p *KafkaPublisher) PublishRentalEvent(ctx context.Context, eventType string, r *Rental) {
	if p == nil || p.w == nil || r == nil {
		return
	}
	payload, err := json.Marshal(RentalEventPayload{
		RentalID:        r.ID,
		VehicleID:       r.VehicleID,
		UserID:          r.UserID,
		Status:          string(r.Status),
		StartDate:       DateOnly(r.StartDate).Format(time.DateOnly),
		EndDate:         DateOnly(r.EndDate).Format(time.DateOnly),
		TotalPriceCents: r.TotalPriceCents,
		Currency:        r.Currency,
	})
	if err != nil {
		return
	}
	env, err := json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Producer:   p.producer,
		Payload:    payload,
	})
	if err != nil {
		return
	}
	_ = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(r.ID),
		Value: env,
		Time:  time.Now(),
	})
}

func (p *KafkaPublisher) Close() error {
	if p == nil || p.w == nil {
		return nil
	}
	return p.w.Close()
}
