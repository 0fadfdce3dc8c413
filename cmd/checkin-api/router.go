package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JonnyWalker81/checkin/backend/internal/config"
	"github.com/JonnyWalker81/checkin/backend/internal/handlers"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/metrics"
	"github.com/JonnyWalker81/checkin/backend/internal/middleware"
	"github.com/JonnyWalker81/checkin/backend/internal/repository"
	"github.com/JonnyWalker81/checkin/backend/internal/service"
)

type routerDeps struct {
	cfg      *config.Config
	log      logger.Logger
	cal      service.Calendar
	checkins repository.CheckinRepository
	health   pinger // nil when the store has no health check
	verifier middleware.TokenVerifier
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	limiter  *middleware.RateLimiter
}

func newRouter(d routerDeps) *gin.Engine {
	// Initialize services
	insightsService := service.NewInsightsService(d.checkins, d.cal, d.metrics)
	checkinService := service.NewCheckinService(d.checkins, d.cal, d.metrics)

	// Initialize handlers
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	checkinHandler := handlers.NewCheckinHandler(checkinService, d.cal)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(d.log))
	router.Use(middleware.Metrics(d.metrics))
	router.Use(middleware.SecurityHeaders(d.cfg.IsProduction()))
	router.Use(middleware.CORS(d.cfg.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		if d.health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := d.health.Ping(ctx); err != nil {
				logger.Ctx(c.Request.Context()).Warn("health check failed", logger.Err(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  "record store unreachable",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    d.cfg.Server.Env,
			"store":  d.cfg.Store.Driver,
		})
	})

	if d.cfg.Metrics.Enabled && d.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{})))
	}

	auth := middleware.Auth(d.verifier, d.metrics)
	if d.cfg.Auth.Mode == config.AuthHeader {
		auth = middleware.HeaderAuth(d.metrics)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	if d.limiter != nil {
		v1.Use(d.limiter.Middleware(d.metrics))
	}

	checkins := v1.Group("/checkins")
	checkins.Use(auth)
	{
		checkins.POST("", checkinHandler.CreateCheckin)
		checkins.PATCH("/:id", checkinHandler.UpdateCheckin)
		checkins.GET("", checkinHandler.ListCheckins)
		checkins.GET("/today", checkinHandler.GetTodayCheckin)

		// Analytics routes
		checkins.GET("/stats", insightsHandler.GetStats)
		checkins.GET("/insights/:window", insightsHandler.GetWindowInsights)
		checkins.GET("/series", insightsHandler.GetSeries)
	}

	return router
}
