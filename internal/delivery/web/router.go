package web

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRouter wires the echo instance: views, middleware and routes.
func NewRouter(h *Handler) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	e.GET("/", h.Home)
	e.GET("/sign-up", h.SignUpForm)
	e.POST("/sign-up", h.SignUp)
	e.GET("/sign-in", h.SignInForm)
	e.POST("/sign-in", h.SignIn)
	e.GET("/index", h.Index, h.RequireSession)
	e.POST("/index", h.Index, h.RequireSession)
	e.GET("/logout", h.Logout)

	return e, nil
}
