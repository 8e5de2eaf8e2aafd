package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopfront/internal/domain/entities"
)

const (
	sessionCookieName = "shopfront_session"
	sessionContextKey = "session"
)

func (h *Handler) setSessionCookie(c echo.Context, email, phone string, permanent bool) error {
	token, expiresAt, err := h.sessions.Issue(email, phone, permanent)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if permanent {
		cookie.Expires = expiresAt
	}
	c.SetCookie(cookie)
	return nil
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// currentSession returns the request's parsed session, or nil when the
// cookie is absent, expired or tampered with.
func (h *Handler) currentSession(c echo.Context) *entities.Session {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	session, err := h.sessions.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

// RequireSession gates protected routes. The session must parse and its
// identity must still resolve in the store; this check runs on every
// request. A successful check re-issues the cookie so the 30-day
// expiration slides.
func (h *Handler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := h.currentSession(c)
		if session == nil {
			return c.Redirect(http.StatusFound, "/sign-up")
		}

		exists, err := h.auth.IdentityExists(c.Request().Context(), session.Email, session.Phone)
		if err != nil {
			c.Logger().Errorf("session identity check failed: %v", err)
			setFlash(c, msgTryAgain)
			return c.Redirect(http.StatusFound, "/sign-up")
		}
		if !exists {
			clearSessionCookie(c)
			setFlash(c, msgAccountGone)
			return c.Redirect(http.StatusFound, "/sign-up")
		}

		if err := h.setSessionCookie(c, session.Email, session.Phone, session.Permanent); err != nil {
			c.Logger().Errorf("session refresh failed: %v", err)
		}

		c.Set(sessionContextKey, session)
		return next(c)
	}
}
