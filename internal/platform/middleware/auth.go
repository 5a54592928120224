package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// JWTValidator defines the interface for validating staff access tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	StaffID string
	Name    string
}

// Context keys for storing authenticated caller information
type contextKeyStaffID struct{}
type contextKeyStaffName struct{}
type contextKeyRawToken struct{}

var (
	ContextKeyStaffID   = contextKeyStaffID{}
	ContextKeyStaffName = contextKeyStaffName{}
	ContextKeyRawToken  = contextKeyRawToken{}
)

// GetStaffID retrieves the authenticated staff ID from the context
func GetStaffID(ctx context.Context) string {
	staffID, ok := ctx.Value(ContextKeyStaffID).(string)
	if !ok {
		return ""
	}
	return staffID
}

// GetStaffName retrieves the authenticated staff member's display name
func GetStaffName(ctx context.Context) string {
	name, ok := ctx.Value(ContextKeyStaffName).(string)
	if !ok {
		return ""
	}
	return name
}

// GetRawToken retrieves the caller's bearer token so it can be forwarded to
// upstream APIs unchanged.
func GetRawToken(ctx context.Context) string {
	token, ok := ctx.Value(ContextKeyRawToken).(string)
	if !ok {
		return ""
	}
	return token
}

func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
				claims, err := validator.ValidateToken(token)
				if err != nil {
					ctx := r.Context()
					requestID := GetRequestID(ctx)
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestID,
					)
					writeUnauthorized(ctx, w, logger, requestID, "Invalid or expired token")
					return
				}

				ctx := r.Context()
				ctx = context.WithValue(ctx, ContextKeyStaffID, claims.StaffID)
				ctx = context.WithValue(ctx, ContextKeyStaffName, claims.Name)
				ctx = context.WithValue(ctx, ContextKeyRawToken, token)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No Authorization header or invalid format
			ctx := r.Context()
			requestID := GetRequestID(ctx)
			logger.WarnContext(ctx, "unauthorized access - missing token",
				"request_id", requestID,
			)
			writeUnauthorized(ctx, w, logger, requestID, "Missing or invalid Authorization header")
		})
	}
}

func writeUnauthorized(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, requestID, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, err := w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
	if err != nil {
		logger.ErrorContext(ctx, "failed to write unauthorized response",
			"error", err,
			"request_id", requestID,
		)
	}
}
