package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wordbank/internal/config"
	"wordbank/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logFatal("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	logInfo("Starting wordbank in %s mode", envName(cfg.IsProduction()))

	provider, err := loadWords(cfg.Words)
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d answers and %d accepted words", provider.Len(), provider.AcceptedLen())

	app := NewApp(cfg, provider)
	app.startServer(app.Router())
}

// loadWords uses the configured word files, or the built-in lists when none are set.
func loadWords(wc config.WordsConfig) (*words.Provider, error) {
	if wc.UseFiles() {
		return words.LoadFiles(wc.AnswersPath, wc.AcceptedPath)
	}
	logInfo("Using built-in word lists")
	return words.Default(), nil
}

func (app *App) startServer(router *gin.Engine) {
	sc := app.Config.Server
	port := strconv.Itoa(sc.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		ReadTimeout:       sc.ReadTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
