package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiter builds the per-IP request limiter applied to the whole
// router.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}
