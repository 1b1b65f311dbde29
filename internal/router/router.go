package router

import (
	"context"
	"net/http"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/auth"
	"github.com/KwnLnrd/Gallopin/internal/feedback"
	"github.com/KwnLnrd/Gallopin/internal/insights"
	"github.com/KwnLnrd/Gallopin/internal/menu"
	"github.com/KwnLnrd/Gallopin/internal/middleware"
	"github.com/KwnLnrd/Gallopin/internal/review"
	"github.com/KwnLnrd/Gallopin/internal/staff"
	"github.com/KwnLnrd/Gallopin/internal/stats"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Public   *PublicHandler
	Auth     *auth.Handler
	Menu     *menu.Handler
	Staff    *staff.Handler
	Feedback *feedback.Handler
	Review   *review.Handler
	Stats    *stats.Handler
	Insights *insights.Handler
}

type Options struct {
	CORSOrigins         []string
	LoginRatePerMinute  int
	ReviewRatePerMinute int
	// Ready backs /health; nil means always healthy.
	Ready func(ctx context.Context) error
}

func New(h Handlers, validator middleware.TokenValidator, opts Options, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.AccessLog(log),
		middleware.Metrics(),
		middleware.SecurityHeaders(),
	)

	// cors.New panics without any allowed origin.
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH + METRICS ─────────────────────────
	r.GET("/health", health(opts.Ready))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/api/public/data", h.Public.Data)
	r.POST("/generate-review", middleware.RateLimit("generate_review", opts.ReviewRatePerMinute), h.Review.Generate)
	r.POST("/api/login", middleware.RateLimit("login", opts.LoginRatePerMinute), h.Auth.Login)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("")
	admin.Use(
		middleware.AuthMiddleware(validator),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/api/servers", h.Staff.List)
		admin.POST("/api/servers", h.Staff.Create)
		admin.PUT("/api/servers/:id", h.Staff.Update)
		admin.DELETE("/api/servers/:id", h.Staff.Delete)

		admin.GET("/api/options/flavors", h.Menu.List)
		admin.POST("/api/options/flavors", h.Menu.Create)
		admin.PUT("/api/options/flavors/:id", h.Menu.Update)
		admin.DELETE("/api/options/flavors/:id", h.Menu.Delete)

		admin.GET("/dashboard", h.Stats.Dashboard)
		admin.GET("/api/server-stats", h.Stats.ServerStats)
		admin.GET("/api/menu-performance", h.Stats.MenuPerformance)
		admin.GET("/api/qualitative-synthesis", h.Stats.QualitativeSynthesis)
		admin.GET("/api/sif-synthesis", h.Insights.Get)

		admin.GET("/api/internal-feedback", h.Feedback.List)
		admin.PUT("/api/internal-feedback/:id/status", h.Feedback.UpdateStatus)

		admin.POST("/api/reset-data", h.Stats.Reset)
	}

	return r
}

func health(ready func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
