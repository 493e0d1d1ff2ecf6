package middleware

import (
	"net/http"
	"sync"
	"time"

	"estatebook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// BookingRateLimiter throttles booking creation per client so a misbehaving
// integration cannot hammer the commit path. Limiters are keyed by guest when
// authenticated, by client IP otherwise.
type BookingRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rps      rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewBookingRateLimiter(cfg config.RateLimitConfig) *BookingRateLimiter {
	l := &BookingRateLimiter{
		limiters: make(map[string]*clientLimiter),
		rps:      rate.Limit(cfg.BookingRPS),
		burst:    cfg.BookingBurst,
	}
	go l.evictLoop()
	return l
}

func (l *BookingRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if guestID, ok := GetGuestID(c); ok {
			key = guestID.String()
		}

		if !l.allow(key) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many booking requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *BookingRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (l *BookingRateLimiter) evictLoop() {
	ticker := time.NewTicker(limiterIdleTTL)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		for key, cl := range l.limiters {
			if time.Since(cl.lastSeen) > limiterIdleTTL {
				delete(l.limiters, key)
			}
		}
		l.mu.Unlock()
	}
}
