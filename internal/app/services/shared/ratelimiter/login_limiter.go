package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LoginLimiter throttles credential attempts per email address with a fixed
// window counter in session storage. The counter key expires with the window,
// so a fresh window starts clean.
type LoginLimiter struct {
	storage     contracts.SessionStorage
	maxAttempts int64
	window      time.Duration
	log         *zap.Logger
}

func NewLoginLimiter(storage contracts.SessionStorage, maxAttempts int, window time.Duration, logger *zap.Logger) *LoginLimiter {
	return &LoginLimiter{
		storage:     storage,
		maxAttempts: int64(maxAttempts),
		window:      window,
		log:         logger,
	}
}

// Allow records one attempt for the given email and reports whether it is
// still within the window budget. Storage errors fail open so an outage does
// not lock everyone out.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	key := fmt.Sprintf("%s:%s", constvars.LoginLimiterGroup, strings.ToLower(email))

	count, err := l.storage.IncrementWithTTL(ctx, key, l.window)
	if err != nil {
		l.log.Warn("LoginLimiter.Allow counter unavailable",
			zap.String("key", key),
			zap.Error(err),
		)
		return true
	}
	if count > l.maxAttempts {
		l.log.Info("LoginLimiter.Allow attempt budget exceeded",
			zap.String("key", key),
			zap.Int64("count", count),
		)
		return false
	}
	return true
}
