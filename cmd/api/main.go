package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/auth"
	"github.com/KwnLnrd/Gallopin/internal/config"
	"github.com/KwnLnrd/Gallopin/internal/db"
	"github.com/KwnLnrd/Gallopin/internal/feedback"
	"github.com/KwnLnrd/Gallopin/internal/insights"
	"github.com/KwnLnrd/Gallopin/internal/llm"
	"github.com/KwnLnrd/Gallopin/internal/logging"
	"github.com/KwnLnrd/Gallopin/internal/menu"
	"github.com/KwnLnrd/Gallopin/internal/places"
	"github.com/KwnLnrd/Gallopin/internal/review"
	"github.com/KwnLnrd/Gallopin/internal/router"
	"github.com/KwnLnrd/Gallopin/internal/staff"
	"github.com/KwnLnrd/Gallopin/internal/stats"
	"github.com/KwnLnrd/Gallopin/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.NopLogger,

		// ───────────────────────── ENV + LOGGING ─────────────────────────
		fx.Provide(config.Load),
		fx.Provide(func(cfg *config.Config) *zap.Logger {
			return logging.New(cfg.LogLevel, cfg.LogFormat, !cfg.IsProduction())
		}),

		// ───────────────────────── DB ─────────────────────────
		fx.Provide(newPool),

		// ───────────────────────── EXTERNAL GATEWAYS ─────────────────────────
		fx.Provide(newCompletionClient),
		fx.Provide(newArchiver),
		fx.Provide(func(cfg *config.Config) *places.Client {
			return places.NewClient(cfg.Places.SerpAPIKey, cfg.Places.PlaceID, "")
		}),

		// ───────────────────────── REPOS ─────────────────────────
		fx.Provide(
			fx.Annotate(menu.NewPostgresRepository, fx.As(new(menu.Repository))),
			fx.Annotate(staff.NewPostgresRepository, fx.As(new(staff.Repository))),
			fx.Annotate(feedback.NewPostgresRepository, fx.As(new(feedback.Repository))),
			fx.Annotate(stats.NewPostgresRepository, fx.As(new(stats.Repository))),
			fx.Annotate(review.NewPostgresRecorder, fx.As(new(review.Recorder))),
		),

		// ───────────────────────── SERVICES ─────────────────────────
		fx.Provide(
			menu.NewService,
			staff.NewService,
			feedback.NewService,
			newAuthService,
			func(m *menu.Service, s *staff.Service, rec review.Recorder, client llm.Client, log *zap.Logger) *review.Service {
				return review.NewService(m, s, rec, client, log)
			},
			func(repo stats.Repository, fb *feedback.Service, a stats.Archiver, cfg *config.Config, log *zap.Logger) *stats.Service {
				return stats.NewService(repo, fb, a, cfg.Timezone, log)
			},
			func(p *places.Client, client llm.Client, log *zap.Logger) *insights.Service {
				return insights.NewService(p, client, log)
			},
		),

		// ───────────────────────── HANDLERS ─────────────────────────
		fx.Provide(
			func(m *menu.Service, s *staff.Service, log *zap.Logger) *router.PublicHandler {
				return router.NewPublicHandler(m, s, log)
			},
			auth.NewHandler,
			menu.NewHandler,
			staff.NewHandler,
			feedback.NewHandler,
			review.NewHandler,
			stats.NewHandler,
			insights.NewHandler,
		),

		fx.Provide(newEngine),

		// ───────────────────────── START ─────────────────────────
		fx.Invoke(seedMenu),
		fx.Invoke(registerServer),
	).Run()
}

func newPool(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// newCompletionClient returns a nil client when the provider key is missing;
// review drafting then fails with the upstream error and the SIF synthesis
// falls back.
func newCompletionClient(cfg *config.Config, log *zap.Logger) llm.Client {
	var (
		client llm.Client
		err    error
	)

	switch cfg.AI.Provider {
	case "anthropic":
		var c *llm.AnthropicClient
		if c, err = llm.NewAnthropicClient(cfg.AI.AnthropicKey, cfg.AI.AnthropicModel); err == nil {
			client = c
		}
	default:
		var c *llm.OpenAIClient
		if c, err = llm.NewOpenAIClient(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel, cfg.AI.OpenAIBaseURL); err == nil {
			client = c
		}
	}

	if err != nil {
		log.Warn("completion gateway disabled", zap.String("provider", cfg.AI.Provider), zap.Error(err))
		return nil
	}

	log.Info("completion gateway ready", zap.String("provider", client.Name()))
	return client
}

func newArchiver(cfg *config.Config, log *zap.Logger) (stats.Archiver, error) {
	if !cfg.R2.Enabled() {
		log.Info("reset archive disabled, R2 not configured")
		return nil, nil
	}

	archive, err := storage.NewR2Archive(context.Background(), storage.R2Options{
		Endpoint:  cfg.R2.Endpoint,
		AccessKey: cfg.R2.AccessKey,
		SecretKey: cfg.R2.SecretKey,
		Bucket:    cfg.R2.Bucket,
	})
	if err != nil {
		return nil, err
	}
	return archive, nil
}

func newAuthService(cfg *config.Config) (*auth.Service, error) {
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, issuer), nil
}

type handlerParams struct {
	fx.In

	Public   *router.PublicHandler
	Auth     *auth.Handler
	Menu     *menu.Handler
	Staff    *staff.Handler
	Feedback *feedback.Handler
	Review   *review.Handler
	Stats    *stats.Handler
	Insights *insights.Handler
}

func newEngine(p handlerParams, authService *auth.Service, pool *pgxpool.Pool, cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return router.New(router.Handlers{
		Public:   p.Public,
		Auth:     p.Auth,
		Menu:     p.Menu,
		Staff:    p.Staff,
		Feedback: p.Feedback,
		Review:   p.Review,
		Stats:    p.Stats,
		Insights: p.Insights,
	}, authService, router.Options{
		CORSOrigins:         cfg.CORSOrigins,
		LoginRatePerMinute:  cfg.LoginRatePerMinute,
		ReviewRatePerMinute: cfg.ReviewRatePerMinute,
		Ready:               pool.Ping,
	}, log)
}

// seedMenu fills an empty menu on first start.
func seedMenu(lc fx.Lifecycle, service *menu.Service, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			options, err := menu.DefaultMenu()
			if err != nil {
				return err
			}

			n, err := service.Seed(ctx, options, false)
			if err != nil {
				return err
			}
			if n > 0 {
				log.Info("default menu seeded", zap.Int("dishes", n))
			}
			return nil
		},
	})
}

func registerServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			log.Info("api listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down api")
			return srv.Shutdown(ctx)
		},
	})
}
