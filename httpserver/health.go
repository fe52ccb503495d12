package httpserver

import (
	"castingagency/pkg/sentry"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/", s.handleRoot)
	s.Router.GET("/healthcheck", s.healthCheck)
}

// handleRoot godoc
// @Summary Liveness
// @Tags health
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"health": "Running!!"})
}

// healthCheck godoc
// @Summary Health Check
// @Description Check that the server can reach the database
// @Tags health
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} APIError
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	if s.DB != nil {
		if err := s.DB.PingContext(c.Request().Context()); err != nil {
			s.Logger.Warnw("database ping failed", "error", err)
			sentry.WithContext(c).Warning("database ping failed")
			return writeError(c, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
		}
	}

	return writeSuccess(c, http.StatusOK, map[string]interface{}{"status": "OK"})
}
