package audit

import (
	"context"
	"fmt"
	"sync"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/app/models"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const AuthAuditQueueName = "telecheck_auth_audit_queue"

// queuePublisher publishes auth lifecycle events to a durable RabbitMQ queue
// with publisher confirms.
type queuePublisher struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewQueuePublisher declares the durable audit queue and enables confirms on
// a fresh channel.
func NewQueuePublisher(conn *amqp.Connection, log *zap.Logger) (contracts.AuditPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		AuthAuditQueueName, // name
		true,               // durable
		false,              // autoDelete
		false,              // exclusive
		false,              // noWait
		nil,                // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &queuePublisher{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (p *queuePublisher) Publish(ctx context.Context, event *models.AuthEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("AuditPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("event", event.Event),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", AuthAuditQueueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, AuthAuditQueueName)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), AuthAuditQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), AuthAuditQueueName)
	}
	return nil
}

// noopPublisher drops events. Used when messaging is not configured.
type noopPublisher struct{}

func NewNoopPublisher() contracts.AuditPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *models.AuthEvent) error { return nil }
