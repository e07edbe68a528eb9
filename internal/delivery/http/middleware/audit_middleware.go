package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sklad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuditMiddleware records every successful mutating request in the action log.
// It must run after Authenticate so the actor is known.
type AuditMiddleware struct {
	auditUsecase usecase.AuditUsecase
	logger       *slog.Logger
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(auditUsecase usecase.AuditUsecase, logger *slog.Logger) *AuditMiddleware {
	return &AuditMiddleware{
		auditUsecase: auditUsecase,
		logger:       logger,
	}
}

// Record is the middleware function. GET/HEAD requests and failed requests
// are not recorded.
func (m *AuditMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			return err
		}

		method := c.Request().Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			return nil
		}

		if c.Response().Status >= http.StatusBadRequest {
			return nil
		}

		userID, ok := UserID(c)
		if !ok {
			return nil
		}

		input := &usecase.RecordActionInput{
			UserID:   userID,
			Action:   actionName(method, c.Path()),
			Method:   method,
			Path:     c.Request().URL.Path,
			EntityID: c.Param("id"),
		}

		// The audit log is advisory: a write failure must not fail the
		// request it describes.
		if recordErr := m.auditUsecase.RecordAction(c.Request().Context(), input); recordErr != nil {
			m.logger.Warn("audit record failed",
				"error", recordErr.Error(),
				"action", input.Action,
			)
		}

		return nil
	}
}

// actionName derives a stable action identifier like "products.create" from
// the route method and path, ignoring path parameters.
func actionName(method, routePath string) string {
	segments := strings.Split(strings.Trim(routePath, "/"), "/")
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" || strings.HasPrefix(segment, ":") {
			continue
		}
		parts = append(parts, segment)
	}

	var verb string
	switch method {
	case http.MethodPost:
		verb = "create"
	case http.MethodPut, http.MethodPatch:
		verb = "update"
	case http.MethodDelete:
		verb = "delete"
	default:
		verb = strings.ToLower(method)
	}

	if len(parts) == 0 {
		return verb
	}

	return parts[len(parts)-1] + "." + verb
}
