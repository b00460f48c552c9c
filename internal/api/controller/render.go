package controller

import (
	"ctchen222/Cat-Match/internal/api/response"
	"ctchen222/Cat-Match/internal/middleware"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// render fills in the identity shared by every page and renders page.
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if identity, ok := middleware.CurrentIdentity(c); ok {
		data["Identity"] = identity
	}
	c.HTML(status, page, data)
}

// renderError shows the error page with the status matching err.
func renderError(c *gin.Context, err error) {
	status := response.StatusFor(err)
	logFailure(c, status, err)
	render(c, status, "error", gin.H{
		"Status":  status,
		"Message": response.Message(err),
	})
	c.Abort()
}

// jsonError writes err in the JSON envelope.
func jsonError(c *gin.Context, err error) {
	logFailure(c, response.StatusFor(err), err)
	response.ErrorResponseFrom(c, err)
}

func logFailure(c *gin.Context, status int, err error) {
	ctx := c.Request.Context()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "Request failed", "path", c.FullPath(), "error", err)
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Request failed")
		return
	}
	slog.DebugContext(ctx, "Request rejected", "path", c.FullPath(), "status", status, "error", err)
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", response.ErrBadRequest, err)
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(false, http.StatusNotFound, "Not Found")
	}
	return id, nil
}
