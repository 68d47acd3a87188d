package helpers

import "context"

type contextKey string

const (
	ContextKeyClaims    contextKey = "authClaims"
	ContextKeyRequestID contextKey = "requestID"
)

// AuthClaims is the decoded token payload the auth middleware attaches to the
// request context. Only identity and role gating may rely on it; profile data
// is always re-queried from the store.
type AuthClaims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HasRole applies the authorization rule used throughout: admin is a
// superset of every role.
func (c *AuthClaims) HasRole(role string) bool {
	return c.Role == role || c.Role == "admin"
}

func ClaimsFromContext(ctx context.Context) (*AuthClaims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*AuthClaims)
	return claims, ok && claims != nil
}

func WithClaims(ctx context.Context, claims *AuthClaims) context.Context {
	return context.WithValue(ctx, ContextKeyClaims, claims)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}
