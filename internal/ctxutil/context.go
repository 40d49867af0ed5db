// Package ctxutil carries request-scoped values across gin and
// context.Context boundaries.
package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

type contextKey string

const (
	ginContextKey contextKey = "gin_context"
	userIDKey     contextKey = "user_id"
	userRoleKey   contextKey = "user_role"

	// TraceIDKey is the context key for request trace IDs.
	TraceIDKey contextKey = "trace_id"
)

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey, c)
}

// GetGinContext extracts *gin.Context from context.Context if it exists.
func GetGinContext(ctx context.Context) (*gin.Context, bool) {
	c, ok := ctx.Value(ginContextKey).(*gin.Context)
	return c, ok
}

// GetValue retrieves a value from the context, preferring the embedded
// gin context when present.
func GetValue(ctx context.Context, key contextKey) any {
	if c, ok := GetGinContext(ctx); ok {
		if val, exists := c.Get(string(key)); exists {
			return val
		}
	}
	return ctx.Value(key)
}

// SetValue sets a value on the context and, when embedded, on the gin
// context as well.
func SetValue(ctx context.Context, key contextKey, val any) context.Context {
	if c, ok := GetGinContext(ctx); ok {
		c.Set(string(key), val)
	}
	return context.WithValue(ctx, key, val)
}

// SetUserID sets the authenticated user ID.
func SetUserID(ctx context.Context, uid string) context.Context {
	return SetValue(ctx, userIDKey, uid)
}

// GetUserID gets the authenticated user ID.
func GetUserID(ctx context.Context) string {
	if uid, ok := GetValue(ctx, userIDKey).(string); ok {
		return uid
	}
	return ""
}

// SetUserRole sets the authenticated user role.
func SetUserRole(ctx context.Context, role domain.Role) context.Context {
	return SetValue(ctx, userRoleKey, string(role))
}

// GetUserRole gets the authenticated user role.
func GetUserRole(ctx context.Context) domain.Role {
	if role, ok := GetValue(ctx, userRoleKey).(string); ok {
		return domain.Role(role)
	}
	return ""
}

// GetActor builds the explicit actor value from the authenticated context.
func GetActor(ctx context.Context) domain.Actor {
	return domain.Actor{ID: GetUserID(ctx), Role: GetUserRole(ctx)}
}

// GetTraceID gets the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets the trace ID on the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}
