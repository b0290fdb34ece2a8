package auth

import (
	"context"
	"errors"
)

type contextKey string

const userIDKey = contextKey("userID")

var ErrNoUser = errors.New("user ID not found in context")

// WithUserID stores the acting user's ID in the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the user ID placed by WithUserID.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", ErrNoUser
	}
	return id, nil
}
