package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUserRole ctxKey = "user_role"
)

// UserIDFromCtx returns the authenticated user ID, or zero if the request
// carried no identity.
func UserIDFromCtx(ctx context.Context) int64 {
	if v, ok := ctx.Value(CtxKeyUserID).(int64); ok {
		return v
	}
	return 0
}

// UserRoleFromCtx returns the authenticated user's role, or "".
func UserRoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserRole).(string); ok {
		return v
	}
	return ""
}
