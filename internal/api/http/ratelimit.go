package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/recruitment-service/internal/config"
	"github.com/spec-kit/recruitment-service/internal/persistence"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// Fixed-window counter: first INCR in a window sets the expiry, the counter
// itself is the request count. Runs as one atomic script so two concurrent
// requests cannot both see count==1 and skip the expiry.
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitCandidate throttles the public pass endpoints per client IP. The
// pass token sits in the URL, so these routes are the brute-force surface; a
// Redis outage degrades to unthrottled rather than unavailable.
func RateLimitCandidate(rdb *persistence.Redis, cfg config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled || rdb == nil || rdb.Client == nil {
			return c.Next()
		}

		key := "ratelimit:pass:" + c.IP()
		count, err := rateLimitScript.Run(c.Context(), rdb.Client, []string{key}, cfg.Window().Milliseconds()).Int64()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count > int64(cfg.Requests) {
			return apperrors.NewDomainError("RATE_LIMITED", "too many requests", http.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
