package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fitpulse/fitpulse/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit caps requests per minute on the wrapped routes. The limiter
// key combines the route name with the caller IP, so one abusive client
// does not exhaust the budget for everyone.
func RateLimit(rateLimiter RequestRateLimiter, routeName string, allowedPerMin int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiterKey := routeName
			if reqIp, err := pkg.ReadUserIP(r); err == nil {
				limiterKey = routeName + "||" + reqIp
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				limiterKey,
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", routeName, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed == 0 {
				http.Error(
					w,
					fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()),
					http.StatusTooEarly,
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
