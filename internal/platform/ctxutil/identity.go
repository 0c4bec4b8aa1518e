package ctxutil

import "context"

// DefaultUserID is used for edits made without an authenticated identity.
const DefaultUserID = "1"

type identityKey struct{}

type Identity struct {
	UserID string
	Role   string
}

func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == "admin"
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func GetIdentity(ctx context.Context) *Identity {
	if id, ok := ctx.Value(identityKey{}).(*Identity); ok {
		return id
	}
	return nil
}

// UserID returns the caller's user id or DefaultUserID.
func UserID(ctx context.Context) string {
	if id := GetIdentity(ctx); id != nil && id.UserID != "" {
		return id.UserID
	}
	return DefaultUserID
}
