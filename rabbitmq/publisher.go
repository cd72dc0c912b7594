package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"cropwatch/models"
)

// AlertEvent is the message published for high and critical alerts so that
// downstream consumers (SMS gateway, advisory dashboard) can fan them out.
type AlertEvent struct {
	FarmerID  string         `json:"farmer_id"`
	CropType  string         `json:"crop_type"`
	RiskScore float64        `json:"risk_score"`
	RiskLevel string         `json:"risk_level"`
	Alerts    []models.Alert `json:"alerts"`
	EmittedAt time.Time      `json:"emitted_at"`
}

// Publisher publishes alert events to a direct exchange. It lazily reconnects
// on publish when the underlying connection has dropped.
type Publisher struct {
	mu       sync.Mutex
	amqpURL  string
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects and declares the alert exchange.
func NewPublisher(amqpURL, exchangeName string) (*Publisher, error) {
	// Best-effort timeout; streadway doesn't accept a ctx on Dial.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p := &Publisher{
		amqpURL:  amqpURL,
		exchange: exchangeName,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// PublishAlerts sends one alert event. The routing key is derived from the
// risk level ("alerts.high", "alerts.critical") so consumers can bind to only
// the severity they care about.
func (p *Publisher) PublishAlerts(event AlertEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.EmittedAt,
	}

	return p.publish(ctx, "alerts."+event.RiskLevel, publishing)
}

// Close closes the publisher connection and channel
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error

	if p.channel != nil {
		if channelErr := p.channel.Close(); channelErr != nil {
			log.Printf("Failed to close channel: %v", channelErr)
			err = channelErr
		}
	}

	if p.conn != nil {
		if connErr := p.conn.Close(); connErr != nil {
			log.Printf("Failed to close connection: %v", connErr)
			if err == nil {
				err = connErr
			}
		}
	}

	return err
}

func (p *Publisher) connectLocked(ctx context.Context) error {
	conn, err := amqp.Dial(p.amqpURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	select {
	case <-ctx.Done():
		ch.Close()
		conn.Close()
		return fmt.Errorf("context timeout while creating publisher: %w", ctx.Err())
	default:
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *Publisher) closeLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func isConnClosedErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, amqp.ErrClosed) {
		return true
	}
	return strings.Contains(err.Error(), "channel/connection is not open")
}

func (p *Publisher) publish(ctx context.Context, routingKey string, publishing amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() || p.channel == nil {
		p.closeLocked()
		if err := p.connectLocked(ctx); err != nil {
			return err
		}
	}

	err := p.channel.Publish(p.exchange, routingKey, false, false, publishing)
	if err != nil && isConnClosedErr(err) {
		p.closeLocked()
		if connErr := p.connectLocked(ctx); connErr != nil {
			return fmt.Errorf("failed to publish alert event: %w (reconnect failed: %v)", err, connErr)
		}
		err = p.channel.Publish(p.exchange, routingKey, false, false, publishing)
	}
	if err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("context timeout while publishing alert event: %w", ctx.Err())
	default:
	}
	return nil
}

// IsConnected indicates whether the publisher currently has an open connection/channel.
func (p *Publisher) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn != nil && !p.conn.IsClosed() && p.channel != nil
}
