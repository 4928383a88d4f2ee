package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"orgsite-backend/pkg/cache"
)

const loginAttemptsPrefix = "login_attempts:"

// LoginLimiter counts failed logins per client IP in a fixed window.
// Cache failures fail open: a broken Redis never locks admins out.
type LoginLimiter struct {
	cache       cache.Cache
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(c cache.Cache, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{cache: c, maxAttempts: maxAttempts, window: window}
}

func attemptsKey(ip string) string {
	return loginAttemptsPrefix + ip
}

// Blocked reports whether ip already used up its failed attempts.
func (l *LoginLimiter) Blocked(ctx context.Context, ip string) bool {
	if l == nil || l.cache == nil || l.maxAttempts <= 0 {
		return false
	}
	var attempts int64
	found, err := l.cache.Get(ctx, attemptsKey(ip), &attempts)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("login limiter read failed")
		return false
	}
	return found && attempts >= int64(l.maxAttempts)
}

func (l *LoginLimiter) RecordFailure(ctx context.Context, ip string) {
	if l == nil || l.cache == nil {
		return
	}
	key := attemptsKey(ip)
	attempts, err := l.cache.Increment(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("login limiter increment failed")
		return
	}
	if attempts == 1 {
		if err := l.cache.Expire(ctx, key, l.window); err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("login limiter expire failed")
		}
	}
	log.Info().Str("ip", ip).Int64("attempts", attempts).Msg("failed admin login")
}

func (l *LoginLimiter) Reset(ctx context.Context, ip string) {
	if l == nil || l.cache == nil {
		return
	}
	if err := l.cache.Delete(ctx, attemptsKey(ip)); err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("login limiter reset failed")
	}
}
