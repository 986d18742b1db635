package http

import (
	"testing"
	"time"

	"github.com/abeheron1/mock-data-holder/internal/config"
	"github.com/abeheron1/mock-data-holder/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestConfig(name string, timeout time.Duration) config.Config {
	return config.Config{
		App: config.App{
			Env:             "local",
			Name:            name,
			HTTPPort:        8080,
			HTTPTimeout:     timeout,
			GracefulTimeout: 5 * time.Second,
		},
	}
}

func newTestServer(t *testing.T, conf config.Config) *svc {
	t.Helper()

	srv := services.New(conf, nil, zap.NewNop())
	return NewHTTPServer(conf, zap.NewNop(), srv, func() bool { return true })
}

func TestNewHTTPServer_AppliesHTTPTimeout(t *testing.T) {
	s := newTestServer(t, newTestConfig("router_timeout_test", 15*time.Second))

	assert.Equal(t, 15*time.Second, s.e.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, s.e.Server.WriteTimeout)
}

func TestNewHTTPServer_ZeroTimeoutKeepsServerDefaults(t *testing.T) {
	s := newTestServer(t, newTestConfig("router_no_timeout_test", 0))

	assert.Zero(t, s.e.Server.ReadTimeout)
	assert.Zero(t, s.e.Server.WriteTimeout)
}

func TestNewHTTPServer_RegistersRoutes(t *testing.T) {
	s := newTestServer(t, newTestConfig("router_routes_test", 0))

	paths := lo.Map(s.e.Routes(), func(r *echo.Route, _ int) string {
		return r.Path
	})

	assert.Contains(t, paths, "/swagger/*")
	assert.Contains(t, paths, "/metrics")
	assert.Contains(t, paths, "/health/liveness")
	assert.Contains(t, paths, "/health/readiness")
	assert.Contains(t, paths, "/api/v1/customer")
	assert.Contains(t, paths, "/api/v1/banking/accounts")
	assert.Contains(t, paths, "/api/v1/banking/accounts/:accountId/transactions")
}
