package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/RusenAli99/say-nileti-im/internal/hash"
)

func TestOwnerTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	token, err := CreateOwnerToken(secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, VerifyOwnerToken(token, secret))
	require.Error(t, VerifyOwnerToken(token, []byte("other-secret")))
	require.Error(t, VerifyOwnerToken("not-a-token", secret))
}

func TestLoginHandler(t *testing.T) {
	passwordHash, err := hash.HashPassword("sifre123")
	require.NoError(t, err)

	h := &Handler{JWTSecret: []byte("test-secret"), PasswordHash: passwordHash}
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"sifre123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"yanlis"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	err = h.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireOwnerOpenWithoutSecret(t *testing.T) {
	e := echo.New()
	mw := RequireOwner(nil)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mw(next)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOwnerRejectsBadToken(t *testing.T) {
	e := echo.New()
	secret := []byte("test-secret")
	mw := RequireOwner(secret)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(next)(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)

	token, err := CreateOwnerToken(secret)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	require.NoError(t, mw(next)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
