// Package rabbitmq publishes trip and driver events to a broker when one is
// configured. The dashboards work without it; the services fall back to a
// no-op publisher.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rabbitmq/amqp091-go"

	"ridehub/internal/domain/models"
)

const (
	tripExchange   = "trip_topic"
	driverExchange = "driver_topic"
)

type Publisher struct {
	conn   *amqp091.Connection
	ch     *amqp091.Channel
	logger *slog.Logger
}

// NewPublisher dials the broker and declares the topic exchanges.
func NewPublisher(url string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, exchange := range []string{tripExchange, driverExchange} {
		if err := ch.ExchangeDeclare(
			exchange,
			"topic",
			true,  // durable
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,
		); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	logger.Info("connected to RabbitMQ")
	return &Publisher{conn: conn, ch: ch, logger: logger}, nil
}

func (p *Publisher) Close() error {
	p.ch.Close()
	return p.conn.Close()
}

func (p *Publisher) publishJSON(ctx context.Context, exchange, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s/%s: %w", exchange, routingKey, err)
	}
	return nil
}

func (p *Publisher) PublishTripStatus(ctx context.Context, trip models.Trip) error {
	return p.publishJSON(ctx, tripExchange, "trip."+string(trip.Status), trip)
}

func (p *Publisher) PublishDriverStatus(ctx context.Context, driverID string, online bool) error {
	return p.publishJSON(ctx, driverExchange, "driver.status", map[string]any{
		"driver_id": driverID,
		"is_online": online,
	})
}

func (p *Publisher) PublishDriverLocation(ctx context.Context, driverID string, loc models.Location) error {
	return p.publishJSON(ctx, driverExchange, "driver.location", map[string]any{
		"driver_id": driverID,
		"location":  loc,
	})
}
