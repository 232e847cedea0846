package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	borrowerIDKey contextKey = "borrowerID"
	roleKey       contextKey = "role"
	requestIDKey  contextKey = "requestID"
)

// BorrowerIDFrom retrieves the authenticated borrower's ID from the request context.
func BorrowerIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(borrowerIDKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the borrower role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithBorrower returns a new context carrying the borrower ID and role.
func ContextWithBorrower(ctx context.Context, borrowerID, role string) context.Context {
	ctx = context.WithValue(ctx, borrowerIDKey, borrowerID)
	return context.WithValue(ctx, roleKey, role)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
