package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-item-api/internal/api/middleware"
	"go-item-api/internal/api/routes"
	"go-item-api/internal/app"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	app    *app.Application
	http   *http.Server
}

// Option customizes the router before routes are registered.
type Option func(*gin.Engine)

// WithTracing instruments every request with an OpenTelemetry span.
func WithTracing(serviceName string) Option {
	return func(r *gin.Engine) {
		r.Use(otelgin.Middleware(serviceName))
	}
}

func NewServer(app *app.Application, opts ...Option) *Server {
	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(app.Logger, true))
	router.Use(middleware.Logger(app.Logger.Named("http")))
	router.Use(middleware.Metrics())
	for _, opt := range opts {
		opt(router)
	}

	app.Logger.Info("configuring CORS", zap.Strings("origins", app.Config.CORS.AllowedOrigins))
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range app.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	_ = router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	routes.RegisterRoutes(router, app)

	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:              app.Config.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	s.app.Logger.Info("server starting",
		zap.String("addr", s.http.Addr),
		zap.String("variant", s.app.Config.Server.Variant))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
