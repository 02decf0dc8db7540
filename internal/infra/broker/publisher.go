package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const BookingEventsQueue = "booking.events"

type message struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	BookingID  int64  `json:"booking_id"`
	HallID     int64  `json:"hall_id"`
	UserName   string `json:"user_name"`
	Purpose    string `json:"purpose"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	OccurredAt string `json:"occurred_at"`
}

// Publisher sends booking events to a durable RabbitMQ queue.
// A nil connection turns Publish into a no-op.
type Publisher struct {
	conn  *amqp.Connection
	queue string
	now   func() time.Time
}

func NewPublisher(conn *amqp.Connection) *Publisher {
	return &Publisher{
		conn:  conn,
		queue: BookingEventsQueue,
		now:   time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, events []shared.BookingEvent) error {
	if p == nil || p.conn == nil || len(events) == 0 {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		slog.Error("rabbitmq: channel open failed", "error", err.Error())
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		slog.Error("rabbitmq: queue declare failed", "queue", p.queue, "error", err.Error())
		return err
	}

	for _, ev := range events {
		pub, err := p.publishing(ev)
		if err != nil {
			slog.Error("rabbitmq: marshal event failed", "type", ev.Type, "error", err.Error())
			return err
		}
		if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
			slog.Error("rabbitmq: publish failed", "type", ev.Type, "booking_id", ev.BookingID, "error", err.Error())
			return err
		}
	}
	return nil
}

func (p *Publisher) publishing(ev shared.BookingEvent) (amqp.Publishing, error) {
	now := p.now().UTC()
	msg := message{
		EventID:    uuid.NewString(),
		Type:       ev.Type,
		BookingID:  ev.BookingID,
		HallID:     ev.HallID,
		UserName:   ev.UserName,
		Purpose:    ev.Purpose,
		StartTime:  ev.Start.Format(booking.LocalLayout),
		EndTime:    ev.End.Format(booking.LocalLayout),
		OccurredAt: now.Format(time.RFC3339),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.EventID,
		Type:         ev.Type,
		Timestamp:    now,
		Body:         body,
	}, nil
}
