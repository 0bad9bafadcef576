package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"trading-journal/internal/commands"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server exposes the command router over local HTTP.
type Server struct {
	echo      *echo.Echo
	router    *commands.Router
	logger    *zap.Logger
	addr      string
	name      string
	mode      string
	startTime time.Time
}

// NewServer creates a Server listening on host:port.
// name and mode are reported by the status endpoint.
func NewServer(router *commands.Router, logger *zap.Logger, host string, port int, name, mode string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		router:    router,
		logger:    logger.Named("server"),
		addr:      fmt.Sprintf("%s:%d", host, port),
		name:      name,
		mode:      mode,
		startTime: time.Now(),
	}
	s.RegisterRoutes(e)
	return s
}

// RegisterRoutes registers the server's endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/invoke/:command", s.invokeHandler)
	e.GET("/status", s.statusHandler)
	e.GET("/health", s.healthHandler)
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start runs the HTTP server in a new goroutine.
// The returned channel receives the error if the server stops for any reason other than Stop.
func (s *Server) Start() <-chan error {
	s.logger.Info("Starting command server", zap.String("address", s.addr))
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Command server failed", zap.Error(err))
			errCh <- err
		}
	}()
	return errCh
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping command server...")
	return s.echo.Shutdown(ctx)
}

func (s *Server) invokeHandler(c echo.Context) error {
	command := c.Param("command")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to read request body"})
	}

	result, err := s.router.Invoke(c.Request().Context(), command, body)
	if errors.Is(err, commands.ErrUnknownCommand) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) statusHandler(c echo.Context) error {
	status := struct {
		Name      string   `json:"name"`
		Mode      string   `json:"mode"`
		Commands  []string `json:"commands"`
		StartTime string   `json:"startTime"`
		Uptime    string   `json:"uptime"`
	}{
		Name:      s.name,
		Mode:      s.mode,
		Commands:  s.router.Names(),
		StartTime: s.startTime.Format(time.RFC3339),
		Uptime:    time.Since(s.startTime).String(),
	}
	return c.JSON(http.StatusOK, status)
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
