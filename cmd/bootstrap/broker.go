package bootstrap

import (
	"context"
	"log/slog"

	"hall-booking/internal/infra/broker"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewAMQPConnection,
		fx.Annotate(
			broker.NewPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

// NewAMQPConnection returns nil when the broker is disabled or unreachable;
// booking events are then dropped after commit.
func NewAMQPConnection(lc fx.Lifecycle, cfg config.Config) *amqp.Connection {
	if !cfg.Broker.Enabled {
		slog.Info("event broker disabled")
		return nil
	}

	conn, err := amqp.Dial(cfg.Broker.URL)
	if err != nil {
		slog.Warn("rabbitmq unreachable, booking events disabled", "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	slog.Info("event broker connected", "queue", broker.BookingEventsQueue)
	return conn
}
