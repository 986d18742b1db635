package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderInteractionID is echoed back when the caller supplies it, otherwise a
// fresh id is generated, so every response is correlatable.
const HeaderInteractionID = "x-fapi-interaction-id"

func (m *AppMiddleware) InteractionID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderInteractionID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(HeaderInteractionID, id)

			return next(c)
		}
	}
}
