package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"shopfront/internal/application/command"
	"shopfront/internal/application/interfaces"
	"shopfront/internal/domain/entities"
	"shopfront/internal/infrastructure"
)

const (
	msgCaptchaFailed      = "Please complete the reCAPTCHA verification"
	msgEmailDomain        = "Only Gmail addresses (@gmail.com) are allowed"
	msgPhoneFormat        = "Phone number must be 10 digits"
	msgDuplicateEmail     = "Email already registered. Please sign in."
	msgAccountNotFound    = "Account not found. Please sign up first."
	msgAccountGone        = "Your account no longer exists. Please sign up."
	msgTooManyAttempts    = "Too many attempts. Please try again later."
	msgRegistrationFailed = "Registration failed. Please try again."
	msgLoginFailed        = "Login failed. Please try again."
	msgTryAgain           = "Something went wrong. Please try again."
)

type Handler struct {
	auth     interfaces.AuthService
	catalog  interfaces.CatalogService
	sessions *infrastructure.SessionService
	captcha  *infrastructure.CaptchaService
}

func NewHandler(
	auth interfaces.AuthService,
	catalog interfaces.CatalogService,
	sessions *infrastructure.SessionService,
	captcha *infrastructure.CaptchaService,
) *Handler {
	return &Handler{
		auth:     auth,
		catalog:  catalog,
		sessions: sessions,
		captcha:  captcha,
	}
}

// Home routes to the catalog when the session resolves to a live
// identity, otherwise to signup.
func (h *Handler) Home(c echo.Context) error {
	if h.sessionResolves(c) {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Redirect(http.StatusFound, "/sign-up")
}

func (h *Handler) SignUpForm(c echo.Context) error {
	if h.sessionResolves(c) {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Render(http.StatusOK, "sign-up.html", echo.Map{
		"Flash":   popFlash(c),
		"SiteKey": h.captcha.SiteKey(),
	})
}

func (h *Handler) SignUp(c echo.Context) error {
	if h.sessionResolves(c) {
		return c.Redirect(http.StatusFound, "/index")
	}

	signUpCommand := &command.SignUpCommand{
		Email:        strings.TrimSpace(c.FormValue("email")),
		Phone:        strings.TrimSpace(c.FormValue("phone")),
		CaptchaToken: c.FormValue("g-recaptcha-response"),
	}

	result, err := h.auth.SignUp(c.Request().Context(), signUpCommand)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrVerificationFailed):
			setFlash(c, msgCaptchaFailed)
			return c.Redirect(http.StatusFound, "/sign-up")
		case errors.Is(err, entities.ErrInvalidEmail):
			setFlash(c, msgEmailDomain)
			return c.Redirect(http.StatusFound, "/sign-up")
		case errors.Is(err, entities.ErrInvalidPhone):
			setFlash(c, msgPhoneFormat)
			return c.Redirect(http.StatusFound, "/sign-up")
		case errors.Is(err, entities.ErrTooManyAttempts):
			setFlash(c, msgTooManyAttempts)
			return c.Redirect(http.StatusFound, "/sign-up")
		case errors.Is(err, entities.ErrDuplicateEmail):
			setFlash(c, msgDuplicateEmail)
			return c.Redirect(http.StatusFound, "/sign-in")
		default:
			c.Logger().Errorf("signup failed: %v", err)
			setFlash(c, msgRegistrationFailed)
			return c.Redirect(http.StatusFound, "/sign-up")
		}
	}

	if err := h.setSessionCookie(c, result.User.Email, result.User.Phone, true); err != nil {
		c.Logger().Errorf("session issue failed: %v", err)
		setFlash(c, msgRegistrationFailed)
		return c.Redirect(http.StatusFound, "/sign-up")
	}
	return c.Redirect(http.StatusFound, "/index")
}

func (h *Handler) SignInForm(c echo.Context) error {
	if h.sessionResolves(c) {
		return c.Redirect(http.StatusFound, "/index")
	}
	return c.Render(http.StatusOK, "sign-in.html", echo.Map{
		"Flash":   popFlash(c),
		"SiteKey": h.captcha.SiteKey(),
	})
}

func (h *Handler) SignIn(c echo.Context) error {
	if h.sessionResolves(c) {
		return c.Redirect(http.StatusFound, "/index")
	}

	signInCommand := &command.SignInCommand{
		Email:        strings.TrimSpace(c.FormValue("email")),
		Phone:        strings.TrimSpace(c.FormValue("phone")),
		CaptchaToken: c.FormValue("g-recaptcha-response"),
	}

	result, err := h.auth.SignIn(c.Request().Context(), signInCommand)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrVerificationFailed):
			setFlash(c, msgCaptchaFailed)
			return c.Redirect(http.StatusFound, "/sign-in")
		case errors.Is(err, entities.ErrTooManyAttempts):
			setFlash(c, msgTooManyAttempts)
			return c.Redirect(http.StatusFound, "/sign-in")
		case errors.Is(err, entities.ErrIdentityNotFound):
			setFlash(c, msgAccountNotFound)
			return c.Redirect(http.StatusFound, "/sign-up")
		default:
			c.Logger().Errorf("signin failed: %v", err)
			setFlash(c, msgLoginFailed)
			return c.Redirect(http.StatusFound, "/sign-in")
		}
	}

	if err := h.setSessionCookie(c, result.User.Email, result.User.Phone, true); err != nil {
		c.Logger().Errorf("session issue failed: %v", err)
		setFlash(c, msgLoginFailed)
		return c.Redirect(http.StatusFound, "/sign-in")
	}
	return c.Redirect(http.StatusFound, "/index")
}

// Index renders the catalog. POST carries the filter form fields.
func (h *Handler) Index(c echo.Context) error {
	session, _ := c.Get(sessionContextKey).(*entities.Session)

	filter := entities.CatalogFilter{}
	if c.Request().Method == http.MethodPost {
		filter.Search = strings.TrimSpace(c.FormValue("search"))
		filter.Category = strings.TrimSpace(c.FormValue("category"))
		filter.MinPrice = parsePrice(c.FormValue("min_price"))
		filter.MaxPrice = parsePrice(c.FormValue("max_price"))
		filter.Sort = entities.ParseSortOrder(strings.TrimSpace(c.FormValue("sort")))
	}

	filters := echo.Map{
		"Search":   filter.Search,
		"Category": filter.Category,
		"MinPrice": strings.TrimSpace(c.FormValue("min_price")),
		"MaxPrice": strings.TrimSpace(c.FormValue("max_price")),
		"Sort":     string(filter.Sort),
	}

	result, err := h.catalog.Browse(c.Request().Context(), filter)
	if err != nil {
		c.Logger().Errorf("catalog query failed: %v", err)
		return c.Render(http.StatusOK, "index.html", echo.Map{
			"Flash":   msgTryAgain,
			"Session": session,
			"Filters": filters,
		})
	}

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Flash":      popFlash(c),
		"Session":    session,
		"Products":   result.Products,
		"Categories": result.Categories,
		"Filters":    filters,
	})
}

// Logout clears the session unconditionally.
func (h *Handler) Logout(c echo.Context) error {
	clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/sign-in")
}

func (h *Handler) sessionResolves(c echo.Context) bool {
	session := h.currentSession(c)
	if session == nil {
		return false
	}
	exists, err := h.auth.IdentityExists(c.Request().Context(), session.Email, session.Phone)
	return err == nil && exists
}

// parsePrice treats empty or unparsable form values as no constraint.
func parsePrice(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &price
}
