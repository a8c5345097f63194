package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InvalidateCache drops the given cache keys after every successful mutating
// request, so cached aggregations never serve lines that were just delivered
// or converted to debt. Best effort: a failing DEL only logs.
func InvalidateCache(rdb *redis.Client, keys ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Msg("cache invalidation failed")
		}
	}
}
