package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/abeheron1/mock-data-holder/internal/common/graceful"
	commonhttp "github.com/abeheron1/mock-data-holder/internal/common/http"
	"github.com/abeheron1/mock-data-holder/internal/common/http/middleware"
	"github.com/abeheron1/mock-data-holder/internal/config"
	"github.com/abeheron1/mock-data-holder/internal/deliveries/http/health"
	"github.com/abeheron1/mock-data-holder/internal/services"

	v1banking "github.com/abeheron1/mock-data-holder/internal/deliveries/http/v1/banking"
	v1customer "github.com/abeheron1/mock-data-holder/internal/deliveries/http/v1/customer"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	// for swagger docs
	_ "github.com/abeheron1/mock-data-holder/docs"
)

type svc struct {
	e               *echo.Echo
	logger          *zap.Logger
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			s.logger.Error("[SHUTDOWN] HTTP server error", zap.Error(err))
		} else {
			s.logger.Info("[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// @title MOCK DATA HOLDER API DOCUMENTATION
// @version 1.0
// @description This is the mock data holder resource api docs.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @schemes http
func NewHTTPServer(
	conf config.Config,
	logger *zap.Logger,
	srv *services.Services,
	ready func() bool,
) *svc {
	app := echo.New()
	app.HideBanner = true
	if conf.App.HTTPTimeout > 0 {
		app.Server.ReadTimeout = conf.App.HTTPTimeout
		app.Server.WriteTimeout = conf.App.HTTPTimeout
	}

	s := &svc{
		e:               app,
		logger:          logger,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, logger)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.InteractionID())
	app.Use(m.Logger())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if !env.IsProduction() {
		pprof.Register(app)
	}

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// health check
	health.New(app.Group(""), ready)

	// apiGroup
	apiGroup := app.Group("/api")

	// v1Group register api
	v1Group := apiGroup.Group("/v1")
	v1customer.New(v1Group, srv.Customer, srv.Banking)
	v1banking.New(v1Group, srv.Banking)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return s
}
