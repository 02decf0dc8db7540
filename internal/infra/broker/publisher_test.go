//go:build unit

package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hall-booking/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publishing(t *testing.T) {
	fixed := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	p := NewPublisher(nil)
	p.now = func() time.Time { return fixed }

	kst := time.FixedZone("KST", 9*60*60)
	ev := shared.BookingEvent{
		Type:      shared.EventBookingCreated,
		BookingID: 42,
		HallID:    1,
		UserName:  "Choir",
		Purpose:   "Practice",
		Start:     time.Date(2024, time.March, 4, 10, 0, 0, 0, kst),
		End:       time.Date(2024, time.March, 4, 12, 0, 0, 0, kst),
	}

	pub, err := p.publishing(ev)
	require.NoError(t, err)

	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, amqp.Persistent, pub.DeliveryMode)
	assert.Equal(t, shared.EventBookingCreated, pub.Type)
	assert.Equal(t, fixed, pub.Timestamp)
	_, err = uuid.Parse(pub.MessageId)
	assert.NoError(t, err)

	var msg message
	require.NoError(t, json.Unmarshal(pub.Body, &msg))
	assert.Equal(t, pub.MessageId, msg.EventID)
	assert.Equal(t, int64(42), msg.BookingID)
	assert.Equal(t, "2024-03-04T10:00:00", msg.StartTime)
	assert.Equal(t, "2024-03-04T12:00:00", msg.EndTime)
	assert.Equal(t, "2024-03-01T09:00:00Z", msg.OccurredAt)
}

func TestPublisher_WithoutConnection(t *testing.T) {
	p := NewPublisher(nil)

	err := p.Publish(context.Background(), []shared.BookingEvent{{Type: shared.EventBookingDeleted}})

	assert.NoError(t, err)
}
