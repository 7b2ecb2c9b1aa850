// Package auditcontext carries caller metadata recorded alongside audit entries.
package auditcontext

import (
	"context"
	"strings"
)

type contextKey string

const (
	requestIDKey contextKey = "audit_request_id"
	ipAddressKey contextKey = "audit_ip_address"
	userAgentKey contextKey = "audit_user_agent"
)

// WithRequestID stores the request identifier for audit metadata.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, requestIDKey, requestID)
}

// WithIPAddress stores the caller IP address for audit metadata.
func WithIPAddress(ctx context.Context, ip string) context.Context {
	return withValue(ctx, ipAddressKey, ip)
}

// WithUserAgent stores the caller user agent for audit metadata.
func WithUserAgent(ctx context.Context, userAgent string) context.Context {
	return withValue(ctx, userAgentKey, userAgent)
}

// RequestIDFromContext returns the request identifier, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	return valueFrom(ctx, requestIDKey)
}

// IPAddressFromContext returns the caller IP address, or "" when absent.
func IPAddressFromContext(ctx context.Context) string {
	return valueFrom(ctx, ipAddressKey)
}

// UserAgentFromContext returns the caller user agent, or "" when absent.
func UserAgentFromContext(ctx context.Context) string {
	return valueFrom(ctx, userAgentKey)
}

func withValue(ctx context.Context, key contextKey, value string) context.Context {
	value = strings.TrimSpace(value)
	if value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func valueFrom(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}
