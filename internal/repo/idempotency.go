package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// idem:order:create:{buyer_id}:{key} -> pending | order id
const keyIdemOrderCreate = "idem:order:create:%s:%s"

const idemPending = "pending"

type idempotencyStore struct {
	rdb        redis.Cmdable
	ttl        time.Duration
	pendingTTL time.Duration
}

// NewIdempotencyStore keeps finished keys for ttl. A claim that is never
// completed or released blocks its key for pendingTTL only.
func NewIdempotencyStore(rdb redis.Cmdable, ttl, pendingTTL time.Duration) *idempotencyStore {
	return &idempotencyStore{rdb: rdb, ttl: ttl, pendingTTL: min(pendingTTL, ttl)}
}

// Claim reserves key for the buyer. When the key already finished, the order id
// it produced is returned with claimed=false. A key still in flight is ErrConflict.
func (s *idempotencyStore) Claim(ctx context.Context, buyerID uuid.UUID, key string) (uuid.UUID, bool, error) {
	k := fmt.Sprintf(keyIdemOrderCreate, buyerID, key)

	ok, err := s.rdb.SetNX(ctx, k, idemPending, s.pendingTTL).Result()
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if ok {
		return uuid.Nil, true, nil
	}

	val, err := s.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.Claim(ctx, buyerID, key)
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if val == idemPending {
		return uuid.Nil, false, fmt.Errorf("%w: request with this idempotency key is in progress", entities.ErrConflict)
	}

	orderID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupted idempotency key %s: %w", k, err)
	}
	return orderID, false, nil
}

func (s *idempotencyStore) Complete(ctx context.Context, buyerID uuid.UUID, key string, orderID uuid.UUID) error {
	k := fmt.Sprintf(keyIdemOrderCreate, buyerID, key)
	if err := s.rdb.Set(ctx, k, orderID.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

// Release forgets a claim whose request failed, so the client may retry with the same key.
func (s *idempotencyStore) Release(ctx context.Context, buyerID uuid.UUID, key string) error {
	k := fmt.Sprintf(keyIdemOrderCreate, buyerID, key)
	if err := s.rdb.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
