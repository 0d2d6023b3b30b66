package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/gulfrate/gulfrate/internal/model"
)

// LeadCreatedEvent is published when a visitor subscribes to rate alerts, so
// downstream consumers (CRM sync, alert matching) can react without coupling
// to the web service.
type LeadCreatedEvent struct {
	LeadID       int64     `json:"lead_id"`
	Email        string    `json:"email"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	TargetRate   *string   `json:"target_rate,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchTimeout: 10 * time.Millisecond,
	}

	log.Info().Str("topic", topic).Msg("kafka publisher initialized")
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishLeadCreated(ctx context.Context, lead *model.Lead) error {
	event := LeadCreatedEvent{
		LeadID:       lead.ID,
		Email:        lead.Email,
		FromCurrency: lead.FromCurrency,
		ToCurrency:   lead.ToCurrency,
		TargetRate:   lead.TargetRate,
		CreatedAt:    lead.CreatedAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal lead event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("lead_%d", lead.ID)),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish lead event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
