package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"

	"wordbank/internal/reqid"
)

// getLimiter returns a rate limiter for the given key (usually client IP).
func (app *App) getLimiter(key string) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if lim, ok := app.LimiterMap[key]; ok {
		return lim
	}

	if key == "" || key == "::1" {
		logWarn("Rate limiter key is empty or loopback: %q", key)
	}
	rps := app.Config.RateLimit.RPS
	if rps <= 0 {
		rps = 1
	}
	lim := rate.NewLimiter(rate.Limit(rps), app.Config.RateLimit.Burst)
	app.LimiterMap[key] = lim
	return lim
}

// rateLimitMiddleware returns a Gin middleware that enforces per-client rate limiting.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !app.getLimiter(key).Allow() {
			logWarn("%sRate limit exceeded for %s", reqid.Prefix(c.Request.Context()), key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrorTooManyRequests})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware injects a request ID into the context for each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(reqid.With(c.Request.Context(), reqID))
		c.Header(RequestIDHeader, reqID)
		c.Next()
	}
}

// listCacheMiddleware lets clients cache the word lists in production.
// Everything else, and every route outside production, is no-store.
func (app *App) listCacheMiddleware() gin.HandlerFunc {
	if app.Config.IsProduction() {
		return cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(app.Config.Cache.ListMaxAge),
		})
	}
	return noStoreMiddleware()
}

func noStoreMiddleware() gin.HandlerFunc {
	return cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})
}
