package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"citylegends/backend/internal/config"
	"citylegends/backend/internal/database"
	clog "citylegends/backend/internal/log"
	"citylegends/backend/internal/mw"
	"citylegends/backend/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// @title           City Legends API
// @version         1.0
// @description     Accounts, rooms and room chat for the City Legends lobby.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	clog.Init(cfg.Env)
	if err := config.Validate(*cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	var limiter *mw.RL
	if cfg.RateLimitRPS > 0 {
		limiter = mw.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, 2*time.Minute)
		defer limiter.Stop()
	}

	r, err := server.SetupRouter(*cfg, db, limiter)
	if err != nil {
		log.Fatal().Err(err).Msg("setup router")
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		log.Info().Msgf("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server run")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
