// Package tracker follows order events and keeps the latest status of each
// order in Redis for the status endpoint.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/Ms-Rodri1k/Projeto-integrador/internal/kafka"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/redisx"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
)

// Cache is the subset of the Redis client the tracker uses.
type Cache interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// StatusRecord is what the cache holds per order.
type StatusRecord struct {
	Status    shop.Status `json:"status"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Service struct {
	Redis       Cache
	ServiceName string
	Log         *zap.Logger
}

// HandleOrderEvent is installed as the consumer handler.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	var env shop.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	var (
		orderID string
		from    shop.Status
		to      shop.Status
	)
	switch env.EventType {
	case shop.EventOrderConfirmed:
		p, err := kafkax.UnwrapPayload[shop.OrderConfirmedPayload](env.Payload)
		if err != nil {
			return err
		}
		orderID, to = p.OrderID, shop.StatusReceived
	case shop.EventOrderStatusAdvanced:
		p, err := kafkax.UnwrapPayload[shop.OrderStatusAdvancedPayload](env.Payload)
		if err != nil {
			return err
		}
		orderID, from, to = p.OrderID, p.From, p.To
	default:
		return nil // not ours
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	seen, err := s.seen(ctx, dkey)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	cur, err := s.current(ctx, key)
	if err != nil {
		return err
	}
	// a redelivered, stale or out-of-order event never moves the cached status back
	if cur != nil && cur.Status.Index() >= to.Index() {
		return s.markSeen(ctx, dkey)
	}
	if cur != nil && from != "" && !shop.CanTransition(cur.Status, to) {
		s.log().Warn("status gap", zap.String("order_id", orderID),
			zap.Stringer("cached", cur.Status), zap.Stringer("to", to))
	}

	rec, _ := json.Marshal(StatusRecord{Status: to, UpdatedAt: env.OccurredAt})
	if err := s.Redis.Set(ctx, key, rec, redisx.TTLStatusCache).Err(); err != nil {
		return err
	}
	s.log().Info("order status cached", zap.String("order_id", orderID), zap.Stringer("status", to))

	// claimed only after the write, so a failed write is retried on redelivery
	return s.markSeen(ctx, dkey)
}

func (s *Service) seen(ctx context.Context, dkey string) (bool, error) {
	err := s.Redis.Get(ctx, dkey).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return err == nil, err
}

func (s *Service) markSeen(ctx context.Context, dkey string) error {
	return s.Redis.SetNX(ctx, dkey, "1", redisx.TTLDedup).Err()
}

func (s *Service) current(ctx context.Context, key string) (*StatusRecord, error) {
	b, err := s.Redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec StatusRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, nil
	}
	return &rec, nil
}

func (s *Service) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
