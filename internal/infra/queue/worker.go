package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender define o contrato para avisar usuários sobre eventos
// de lead (email hoje; push/analytics assinam a mesma exchange).
type NotificationSender interface {
	SendLeadAssigned(to, ownerName, leadName string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier NotificationSender
}

func NewWorker(ch *amqp.Channel, notifier NotificationSender) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event LeadEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Evento recebido: %s (lead=%s org=%s)", event.Type, event.LeadID, event.OrganizationID)

			if err := w.processEvent(context.Background(), event); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar evento: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, event LeadEvent) error {
	switch event.Type {
	case EventLeadTransferred:
		if w.Notifier == nil || event.TargetEmail == "" {
			return nil
		}
		return w.Notifier.SendLeadAssigned(event.TargetEmail, event.TargetName, event.LeadName)

	case EventLeadCreated, EventLeadImported, EventLeadDeleted, EventFunnelPromoted:
		// Só auditoria via log por enquanto.
		return nil

	default:
		log.Printf("⚠️ Evento desconhecido: %s. Apenas logando.", event.Type)
		return nil
	}
}
