package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrDuplicateRequest is returned when an Idempotency-Key is replayed
var ErrDuplicateRequest = shared.Conflict("This request has already been submitted")

// maxNumberAttempts bounds order and sale number regeneration on collision
const maxNumberAttempts = 5

// requestGuard claims Idempotency-Keys for one kind of request
type requestGuard struct {
	store  shared.IdempotencyStore
	scope  string
	ttl    time.Duration
	logger *zap.Logger
}

// claim reserves key for the user. The returned release frees the key again and
// must be called when the request fails. An empty key is never claimed.
func (g requestGuard) claim(ctx context.Context, userID int64, key string) (func(), error) {
	noop := func() {}
	if g.store == nil || key == "" {
		return noop, nil
	}
	full := fmt.Sprintf("%s:%d:%s", g.scope, userID, key)
	claimed, err := g.store.MarkProcessed(ctx, full, g.ttl)
	if err != nil {
		return noop, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if !claimed {
		return noop, ErrDuplicateRequest
	}
	return func() {
		if err := g.store.Release(context.WithoutCancel(ctx), full); err != nil {
			g.logger.Warn("Failed to release idempotency key", zap.String("key", full), zap.Error(err))
		}
	}, nil
}
