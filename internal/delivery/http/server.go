// Package http implements the HTTP transport of the application.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"sklad/config"
	"sklad/internal/delivery"
	appmiddleware "sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/router"
	"sklad/internal/delivery/http/validator"
	"sklad/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *appmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())

	// CSRF protection for cookie-based browser sessions. API clients
	// authenticating by header are unaffected.
	if params.Config.CSRF != nil && params.Config.CSRF.Enabled {
		cookieName := params.Config.CSRF.CookieName
		if cookieName == "" {
			cookieName = "_csrf"
		}
		echoServer.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "header:X-CSRF-Token",
			CookieName:     cookieName,
			CookieHTTPOnly: false,
			CookieSecure:   params.Config.Auth != nil && params.Config.Auth.CookieSecure,
			Skipper: func(c echo.Context) bool {
				// Requests authenticated by the Authorization header do
				// not carry session cookies, so CSRF does not apply.
				return c.Request().Header.Get("Authorization") != ""
			},
		}))
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
