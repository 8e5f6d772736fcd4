// Package events publishes order lifecycle events to the orders topic
// consumed by the inventory service. Publication is best-effort: failures
// are logged and never fail the originating request.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

// Producer is the broker surface the publisher needs; satisfied by
// broker.Producer.
type Producer interface {
	Publish(ctx context.Context, key, value []byte) error
}

const (
	TypeOrderCreated = "order.created"
	TypeOrderDeleted = "order.deleted"
)

type OrderEvent struct {
	EventID        string     `json:"event_id"`
	Type           string     `json:"type"`
	OrderID        int64      `json:"order_id"`
	CustomerID     int64      `json:"customer_id,omitempty"`
	OrderReference string     `json:"order_reference,omitempty"`
	OrderDate      *time.Time `json:"order_date,omitempty"`
}

type Publisher struct {
	producer Producer
	logger   logger.ZapLogger
}

func NewPublisher(producer Producer, log logger.ZapLogger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   log,
	}
}

// A nil Publisher disables publication (tests, broker-less environments).

func (p *Publisher) OrderCreated(ctx context.Context, o *model.Order) {
	if p == nil {
		return
	}
	date := o.OrderDate
	p.publish(ctx, &OrderEvent{
		EventID:        uuid.New().String(),
		Type:           TypeOrderCreated,
		OrderID:        o.ID,
		CustomerID:     o.CustomerID,
		OrderReference: o.OrderReference,
		OrderDate:      &date,
	})
}

func (p *Publisher) OrderDeleted(ctx context.Context, orderID int64) {
	if p == nil {
		return
	}
	p.publish(ctx, &OrderEvent{
		EventID: uuid.New().String(),
		Type:    TypeOrderDeleted,
		OrderID: orderID,
	})
}

func (p *Publisher) publish(ctx context.Context, ev *OrderEvent) {
	value, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to encode order event", zap.Error(err))
		return
	}
	if err := p.producer.Publish(ctx, []byte(ev.Type), value); err != nil {
		p.logger.Error("failed to publish order event",
			zap.String("type", ev.Type),
			zap.Int64("order_id", ev.OrderID),
			zap.Error(err))
	}
}
