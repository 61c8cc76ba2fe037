package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в RabbitMQ
// Fire-and-forget: все методы публикации ничего не возвращают, ошибки
// логируются: сбой доставки уведомления никогда не откатывает бронирование
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	url     string
	logger  Logger
}

// NewPublisher подключается к RabbitMQ и объявляет durable-очередь уведомлений
func NewPublisher(url, queue string, logger Logger) (*Publisher, error) {
	p := &Publisher{
		queue:  queue,
		url:    url,
		logger: logger,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("notify: failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("notify: failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("notify: failed to declare queue: %w", err)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *Publisher) ensureConnection() error {
	if p.conn != nil && !p.conn.IsClosed() {
		return nil
	}
	return p.connect()
}

// ReservationCreated публикует событие о новой записи
func (p *Publisher) ReservationCreated(ctx context.Context, res *domain.Reservation) {
	p.publish(ctx, newReservationEvent(EventReservationCreated, res, nil))
}

// ReservationUpdated публикует событие о переносе записи
func (p *Publisher) ReservationUpdated(ctx context.Context, res *domain.Reservation) {
	p.publish(ctx, newReservationEvent(EventReservationUpdated, res, nil))
}

// ReservationCancelled публикует событие об отмене записи
func (p *Publisher) ReservationCancelled(ctx context.Context, res *domain.Reservation, reason string) {
	p.publish(ctx, newReservationEvent(EventReservationCancelled, res, &reason))
}

func (p *Publisher) publish(ctx context.Context, event ReservationEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("notify: failed to marshal event %s for reservation id=%d: %v",
			event.Event, event.ReservationID, err)
		return
	}

	if err := p.ensureConnection(); err != nil {
		p.logger.Error("notify: connection unavailable, dropping event %s for reservation id=%d: %v",
			event.Event, event.ReservationID, err)
		return
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("notify: failed to publish event %s for reservation id=%d: %v",
			event.Event, event.ReservationID, err)
		return
	}

	p.logger.Info("notify: published event %s for reservation id=%d", event.Event, event.ReservationID)
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// Disabled заглушка нотификатора, когда RabbitMQ выключен в конфигурации
type Disabled struct{}

// ReservationCreated no-op
func (Disabled) ReservationCreated(ctx context.Context, res *domain.Reservation) {}

// ReservationUpdated no-op
func (Disabled) ReservationUpdated(ctx context.Context, res *domain.Reservation) {}

// ReservationCancelled no-op
func (Disabled) ReservationCancelled(ctx context.Context, res *domain.Reservation, reason string) {}
