package middleware

import (
	"context"
	"strings"

	"github.com/CRT1223/tech13-garage/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// Profiling tags each request's CPU samples with its method, route and controller
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || route == "/health" {
			c.Next()
			return
		}

		labels := map[string]string{
			telemetry.ProfilingLabelMethod: c.Request.Method,
			telemetry.ProfilingLabelRoute:  route,
		}
		if controller := controllerFromRoute(route); controller != "" {
			labels[telemetry.ProfilingLabelController] = controller
		}

		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// controllerFromRoute derives a low-cardinality controller name.
// "/api/v1/products/:id" gives "products", "/api/v1/admin/awards/:id/image" gives "admin.awards".
func controllerFromRoute(route string) string {
	var parts []string
	for _, part := range strings.Split(route, "/") {
		if part == "" || part == "api" || isVersionSegment(part) || strings.HasPrefix(part, ":") {
			continue
		}
		parts = append(parts, part)
		if part != "admin" || len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, ".")
}

// isVersionSegment checks if a path segment is an API version (v1, v2, etc.)
func isVersionSegment(segment string) bool {
	if len(segment) < 2 || (segment[0] != 'v' && segment[0] != 'V') {
		return false
	}
	for i := 1; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return false
		}
	}
	return true
}
