// Package session carries the per-request session identity through
// context.Context, so the use case layer can consult the authentication state
// at the start of every cart operation without depending on the delivery
// layer.
package session

import (
	"context"

	"boutique/internal/domain/entity"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const keySession contextKey = "cart_session"

// Session identifies one browser session. ID is an opaque id minted by the
// delivery layer and survives login and logout, so the local cart cache has a
// stable key. Credential is non-nil only while a valid bearer token is
// present on the request.
type Session struct {
	ID         string
	Credential *entity.Credential
}

// Authority derives the cart's authority mode from the credential: remote
// while a valid credential is present, local otherwise.
func (s Session) Authority() entity.AuthorityMode {
	if s.Credential != nil && s.Credential.Token != "" {
		return entity.AuthorityRemote
	}

	return entity.AuthorityLocal
}

// OwnerID is the identity cart events are attributed to: the authenticated
// user when present, the anonymous session id otherwise.
func (s Session) OwnerID() string {
	if s.Credential != nil && s.Credential.UserID != "" {
		return s.Credential.UserID
	}

	return s.ID
}

// WithSession returns a new context carrying the session.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, keySession, sess)
}

// FromContext extracts the session from the context. The second return is
// false when no session was attached.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(keySession).(Session)
	if !ok || sess.ID == "" {
		return Session{}, false
	}

	return sess, true
}
