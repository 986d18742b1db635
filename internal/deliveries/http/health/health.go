package health

import (
	"net/http"

	commonhttp "github.com/abeheron1/mock-data-holder/internal/common/http"

	"github.com/labstack/echo/v4"
)

type healthHandler struct {
	ready func() bool
}

// New health handler will initialize the health/ resources endpoint.
// ready reports whether the seed document snapshot has been loaded.
func New(app *echo.Group, ready func() bool) {
	hh := healthHandler{ready: ready}
	health := app.Group("/health")
	health.GET("/liveness", hh.liveness())
	health.GET("/readiness", hh.readiness())
}

type (
	DoHealthCheckResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}
)

func (hh healthHandler) liveness() echo.HandlerFunc {
	return func(c echo.Context) error {
		return commonhttp.RestSuccessResponse(c, http.StatusOK, DoHealthCheckResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}

func (hh healthHandler) readiness() echo.HandlerFunc {
	return func(c echo.Context) error {
		if !hh.ready() {
			return commonhttp.RestSuccessResponse(c, http.StatusServiceUnavailable, DoHealthCheckResponse{
				Kind:   "health",
				Status: "seed document not loaded",
			})
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, DoHealthCheckResponse{
			Kind:   "health",
			Status: "ready",
		})
	}
}
