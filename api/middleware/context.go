package middleware

import "context"

type contextKey string

const (
	ctxUserID    contextKey = "user_id"
	ctxUsername  contextKey = "username"
	ctxUserEmail contextKey = "user_email"
)

// CallerIdentity is the verified identity downstream handlers consume.
type CallerIdentity struct {
	UserID   string
	Username string
	Email    string
}

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func UsernameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUsername).(string); ok {
		return v
	}
	return ""
}

func UserEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserEmail).(string); ok {
		return v
	}
	return ""
}

// CallerFromContext bundles the identity fields seeded by the Auth guard.
func CallerFromContext(ctx context.Context) CallerIdentity {
	return CallerIdentity{
		UserID:   UserIDFromContext(ctx),
		Username: UsernameFromContext(ctx),
		Email:    UserEmailFromContext(ctx),
	}
}

// WithCaller injects the caller identity into the context.
func WithCaller(ctx context.Context, caller CallerIdentity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, caller.UserID)
	ctx = context.WithValue(ctx, ctxUsername, caller.Username)
	return context.WithValue(ctx, ctxUserEmail, caller.Email)
}
