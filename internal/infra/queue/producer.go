package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento publicados no ciclo de vida do lead.
const (
	EventLeadCreated     = "lead.created"
	EventLeadImported    = "lead.imported"
	EventLeadDeleted     = "lead.deleted"
	EventLeadTransferred = "lead.transferred"
	EventFunnelPromoted  = "funnel.promoted"
)

type LeadEvent struct {
	Type           string `json:"type"`
	LeadID         string `json:"lead_id,omitempty"`
	LeadName       string `json:"lead_name,omitempty"`
	OrganizationID string `json:"organization_id"`
	ActorUserID    string `json:"actor_user_id,omitempty"`

	// Preenchidos em lead.transferred
	TargetUserID string `json:"target_user_id,omitempty"`
	TargetName   string `json:"target_name,omitempty"`
	TargetEmail  string `json:"target_email,omitempty"`

	// Preenchido em lead.imported / lead.deleted (bulk)
	Count int `json:"count,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, event LeadEvent) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, event LeadEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.leads
		RoutingKey,   // k.lead-event
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
