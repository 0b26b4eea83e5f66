package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RusenAli99/say-nileti-im/internal/hash"
	"github.com/RusenAli99/say-nileti-im/internal/logging"
)

// Handler implements the single-owner login. There is no users table: the
// shop owner's bcrypt hash comes from configuration, so the storage file
// keeps exactly its five domain tables.
type Handler struct {
	JWTSecret    []byte
	PasswordHash string
}

func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if h.PasswordHash == "" || !hash.CheckPassword(h.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong password")
	}

	token, err := CreateOwnerToken(h.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, map[string]string{"access_token": token})
}
