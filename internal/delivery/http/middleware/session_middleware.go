package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/service"
	"boutique/internal/domain/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXSessionID lets non-browser clients carry the session id themselves
// instead of relying on the cookie jar.
const HeaderXSessionID = "X-Session-Id"

// SessionMiddleware resolves the storefront session for every request and
// attaches it to the request context. The session id is minted once per
// browser and survives login and logout; the credential is re-derived from
// the Authorization header on each request, so authority mode always reflects
// the current authentication state.
//
// There is no 401 path here. A missing or invalid bearer token simply makes
// the session anonymous and routes the cart to its local store.
type SessionMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{tokenSvc: tokenSvc, cfg: cfg, logger: logger}
}

// Attach resolves the session id and optional credential, then stores the
// session on the request context for the use case layer.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := m.resolveSessionID(c)

		sess := session.Session{
			ID:         sessionID,
			Credential: m.resolveCredential(c),
		}

		ctx := session.WithSession(c.Request().Context(), sess)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveSessionID finds the session id on the request or mints a new one.
// The cookie takes precedence over the header so a browser that has both
// keeps its original identity.
func (m *SessionMiddleware) resolveSessionID(c echo.Context) string {
	cookieName := m.cfg.Session.CookieName

	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if headerID := c.Request().Header.Get(HeaderXSessionID); headerID != "" {
		return headerID
	}

	sessionID := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}

// resolveCredential validates the bearer token when one is present. Invalid
// tokens are logged at debug and dropped; the request proceeds anonymously.
func (m *SessionMiddleware) resolveCredential(c echo.Context) *entity.Credential {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil
	}

	cred, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		m.logger.Debug("bearer token rejected, continuing as anonymous",
			slog.Any("error", err),
		)

		return nil
	}

	return &cred
}
