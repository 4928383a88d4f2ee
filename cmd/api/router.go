package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orgsite-backend/internal/shared/middleware"
	"orgsite-backend/internal/shared/response"
	"orgsite-backend/pkg/container"
)

// resourceHandler is the handler shape shared by every resource family.
type resourceHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	cookie := c.Config.Session.CookieName
	httpMetrics := middleware.NewHTTPMetrics(c.Metrics)

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		httpMetrics.Middleware(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.AdminGate(c.JWTManager, cookie),
	)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.Metrics, promhttp.HandlerOpts{})))

	requireSession := middleware.RequireSession(c.JWTManager, cookie)

	setupAdminRoutes(router, c, requireSession)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		registerResource(v1, "/blog", c.BlogHandler, requireSession)
		v1.GET("/blog/slug/:slug", c.BlogHandler.GetBySlug)

		registerResource(v1, "/contacts", c.ContactHandler, requireSession)
		registerResource(v1, "/projects", c.ProjectHandler, requireSession)
		registerResource(v1, "/services", c.OfferingHandler, requireSession)
		registerResource(v1, "/team", c.TeamHandler, requireSession)

		registerResource(v1, "/policies", c.PolicyHandler, requireSession)
		v1.GET("/policies/active/:type", c.PolicyHandler.GetActive)

		registerResource(v1, "/home-sections", c.SectionHandler, requireSession)
		v1.PUT("/home-sections", requireSession, c.SectionHandler.BulkUpsert)

		setupRecruitmentRoutes(v1, c, requireSession)
		setupNewsletterRoutes(v1, c)
		setupPageRoutes(v1, c)

		v1.POST("/upload", requireSession, c.UploadHandler.Upload)
	}

	return router
}

// registerResource mounts the collection and item endpoints; reads are
// public, writes need a session.
func registerResource(v1 *gin.RouterGroup, path string, h resourceHandler, requireSession gin.HandlerFunc) {
	g := v1.Group(path)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", requireSession, h.Create)
	g.PUT("/:id", requireSession, h.Update)
	g.DELETE("/:id", requireSession, h.Delete)
}

func setupRecruitmentRoutes(v1 *gin.RouterGroup, c *container.Container, requireSession gin.HandlerFunc) {
	g := v1.Group("/recruitment")
	{
		g.GET("", c.RecruitmentHandler.GetCurrent)
		g.GET("/:id", c.RecruitmentHandler.Get)
		g.POST("", requireSession, c.RecruitmentHandler.Create)
		g.PUT("/:id", requireSession, c.RecruitmentHandler.Update)
		g.DELETE("/:id", requireSession, c.RecruitmentHandler.Delete)
	}
}

func setupNewsletterRoutes(v1 *gin.RouterGroup, c *container.Container) {
	public := v1.Group("/newsletter")
	{
		public.POST("/subscribe", c.NewsletterHandler.Subscribe)
		public.POST("/unsubscribe", c.NewsletterHandler.Unsubscribe)
	}
}

func setupPageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	pages := v1.Group("/pages")
	{
		pages.GET("/home", c.PageHandler.Home)
		pages.GET("/recruitment", c.PageHandler.Recruitment)
	}
}

// setupAdminRoutes mounts the back-office pages behind the admin gate.
// Subscriber management also re-checks the session on the route itself.
func setupAdminRoutes(router *gin.Engine, c *container.Container, requireSession gin.HandlerFunc) {
	router.GET(middleware.AdminPrefix, c.PageHandler.Dashboard)

	admin := router.Group(middleware.AdminPrefix)
	{
		admin.GET("/login", c.AuthHandler.Status)
		admin.POST("/login", c.AuthHandler.Login)
		admin.POST("/logout", c.AuthHandler.Logout)
		admin.GET("/settings", c.PageHandler.AdminSettings)
	}

	subscribers := admin.Group("/newsletter", requireSession)
	{
		subscribers.GET("", c.NewsletterHandler.List)
		subscribers.GET("/export", c.NewsletterHandler.Export)
		subscribers.GET("/:id", c.NewsletterHandler.Get)
		subscribers.DELETE("/:id", c.NewsletterHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(reqCtx); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		// Redis is optional: report it without failing the check.
		if err := c.Cache.Ping(reqCtx); err != nil {
			checks["redis"] = err.Error()
		}

		response.Success(ctx, status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
			"pool":    c.DB.Stats(),
		})
	}
}
