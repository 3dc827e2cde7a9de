// Package server exposes the HTTP API: public health and delivery
// endpoints plus the admin price-configuration surface.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	auditdomain "github.com/mmdpc/courierd/internal/audit/domain"
	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
	"github.com/mmdpc/courierd/internal/config"
	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(Start),
)

type ServerParams struct {
	fx.In

	Log         *zap.Logger
	AuthSvc     authdomain.Service
	FixedSvc    fixedpricedomain.Service
	TariffSvc   tariffdomain.Service
	DeliverySvc deliverydomain.Service
	AuditSvc    auditdomain.Service `optional:"true"`
}

type Server struct {
	log         *zap.Logger
	authSvc     authdomain.Service
	fixedSvc    fixedpricedomain.Service
	tariffSvc   tariffdomain.Service
	deliverySvc deliverydomain.Service
	auditSvc    auditdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		log:         p.Log.Named("server"),
		authSvc:     p.AuthSvc,
		fixedSvc:    p.FixedSvc,
		tariffSvc:   p.TariffSvc,
		deliverySvc: p.DeliverySvc,
		auditSvc:    p.AuditSvc,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(s.RequestLogger(), s.RecoveryMiddleware(), s.MetricsMiddleware())

	r.NoMethod(func(c *gin.Context) {
		AbortWithError(c, ErrMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not found")
	})

	r.GET("/metrics", MetricsHandler())

	api := r.Group("/api")
	{
		// The original service answers health checks on GET and POST alike.
		api.GET("/health", s.Health)
		api.POST("/health", s.Health)

		api.POST("/request-delivery", s.RequestDelivery)

		admin := api.Group("/admin")
		admin.POST("/login", s.Login)

		prices := admin.Group("/prices", s.AdminRequired())
		{
			prices.GET("/fixed", s.GetFixedPrices)
			prices.PUT("/fixed", s.PutFixedPrices)
			prices.GET("/variable", s.GetVariablePrices)
			prices.PUT("/variable", s.PutVariablePrices)
		}
	}

	return r
}

// Start runs the HTTP listener under the fx lifecycle.
func Start(lc fx.Lifecycle, s *Server, cfg config.Config, log *zap.Logger) {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
