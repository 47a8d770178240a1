package main

import (
	"sync"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"wordbank/internal/config"
	"wordbank/internal/words"
)

// App holds the dependencies shared by every handler.
type App struct {
	Words        *words.Provider
	Config       *config.Config
	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
	StartTime    time.Time
}

// NewApp wires a provider and configuration into an App.
func NewApp(cfg *config.Config, provider *words.Provider) *App {
	return &App{
		Words:      provider,
		Config:     cfg,
		LimiterMap: make(map[string]*rate.Limiter),
		StartTime:  time.Now(),
	}
}

// Router builds the gin engine with middleware and routes.
func (app *App) Router() *gin.Engine {
	router := gin.Default()

	router.Use(requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	if err := router.SetTrustedProxies(app.Config.Server.TrustedProxies); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	noStore := noStoreMiddleware()
	listCache := app.listCacheMiddleware()

	router.GET(RouteRandomWord, noStore, app.randomWordHandler)
	router.POST(RouteNextWord, noStore, app.rateLimitMiddleware(), app.nextWordHandler)
	router.GET(RouteWords, listCache, app.wordsHandler)
	router.GET(RouteLookup, listCache, app.lookupHandler)
	router.GET(RouteGuesses, listCache, app.guessesHandler)
	router.GET(RouteHealth, noStore, app.healthzHandler)

	return router
}
