package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/session"
	mockService "boutique/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionMiddlewareFixtures holds all test dependencies for session middleware tests.
type sessionMiddlewareFixtures struct {
	middleware *SessionMiddleware
	tokenSvc   *mockService.MockTokenService
	echo       *echo.Echo
}

func createTestSessionMiddleware(t *testing.T) sessionMiddlewareFixtures {
	cfg := &config.Config{}
	cfg.Session.CookieName = "boutique_session"

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewSessionMiddleware(tokenSvc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return sessionMiddlewareFixtures{
		middleware: m,
		tokenSvc:   tokenSvc,
		echo:       echo.New(),
	}
}

// capture runs the middleware around a handler that records the session it
// received on the request context.
func capture(t *testing.T, fx sessionMiddlewareFixtures, req *http.Request) (session.Session, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	var got session.Session
	handler := fx.middleware.Attach(func(c echo.Context) error {
		sess, ok := session.FromContext(c.Request().Context())
		require.True(t, ok)
		got = sess

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return got, rec
}

func TestSessionMiddleware_MintsSessionCookie(t *testing.T) {
	fx := createTestSessionMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	sess, rec := capture(t, fx, req)

	assert.NotEmpty(t, sess.ID)
	assert.Nil(t, sess.Credential)
	assert.Equal(t, entity.AuthorityLocal, sess.Authority())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "boutique_session", cookies[0].Name)
	assert.Equal(t, sess.ID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_ReusesCookieSessionID(t *testing.T) {
	fx := createTestSessionMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "boutique_session", Value: "existing-session"})
	sess, rec := capture(t, fx, req)

	assert.Equal(t, "existing-session", sess.ID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_AcceptsHeaderSessionID(t *testing.T) {
	fx := createTestSessionMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(HeaderXSessionID, "header-session")
	sess, _ := capture(t, fx, req)

	assert.Equal(t, "header-session", sess.ID)
}

func TestSessionMiddleware_ValidBearerBecomesCredential(t *testing.T) {
	fx := createTestSessionMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(entity.Credential{Token: "good-token", UserID: "user-7"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "boutique_session", Value: "existing-session"})
	req.Header.Set("Authorization", "Bearer good-token")
	sess, _ := capture(t, fx, req)

	// The session id is unchanged by authentication; only the credential and
	// therefore the authority mode move.
	assert.Equal(t, "existing-session", sess.ID)
	require.NotNil(t, sess.Credential)
	assert.Equal(t, "user-7", sess.Credential.UserID)
	assert.Equal(t, entity.AuthorityRemote, sess.Authority())
}

func TestSessionMiddleware_InvalidBearerStaysAnonymous(t *testing.T) {
	fx := createTestSessionMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(entity.Credential{}, errors.New("token expired")).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "boutique_session", Value: "existing-session"})
	req.Header.Set("Authorization", "Bearer bad-token")
	sess, rec := capture(t, fx, req)

	// Never a 401: the request proceeds with local authority.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, sess.Credential)
	assert.Equal(t, entity.AuthorityLocal, sess.Authority())
}

func TestSessionMiddleware_MalformedAuthorizationHeaderIgnored(t *testing.T) {
	fx := createTestSessionMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "boutique_session", Value: "existing-session"})
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	sess, _ := capture(t, fx, req)

	assert.Nil(t, sess.Credential)
}
