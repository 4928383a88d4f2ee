package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"orgsite-backend/pkg/container"
)

type healthCheck struct {
	name string
	fn   func(ctx context.Context) error
}

// startServices checks the worker's dependencies, then serves /health,
// /ready and /metrics in the background.
func startServices(c *container.Container, port string) error {
	checks := []healthCheck{
		{"redis", c.Cache.Ping},
		{"database", c.DB.HealthCheck},
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := check.fn(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s check failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("dependency ok")
	}

	go startHealthServer(c, port)
	return nil
}

func startHealthServer(c *container.Container, port string) {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "UP", "service": "orgsite-worker"})
	})
	router.GET("/ready", func(ctx *gin.Context) {
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "NOT_READY", "error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "READY"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.Metrics, promhttp.HandlerOpts{})))

	log.Info().Str("port", port).Msg("worker health server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Error().Err(err).Msg("worker health server stopped")
	}
}
