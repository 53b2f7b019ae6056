package httpapi

import "context"

type contextKey string

const moderatorContextKey contextKey = "moderator_id"

func withModerator(ctx context.Context, moderatorID string) context.Context {
	return context.WithValue(ctx, moderatorContextKey, moderatorID)
}

// moderatorFromContext returns the caller-supplied moderator identity, used
// only for audit logging.
func moderatorFromContext(ctx context.Context) string {
	id, _ := ctx.Value(moderatorContextKey).(string)
	return id
}
