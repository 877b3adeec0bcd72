package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/complaintdesk/portal/internal/api/flash"
	"github.com/complaintdesk/portal/internal/api/metrics"
	"github.com/complaintdesk/portal/internal/api/middleware"
	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// AuthHandler owns the registration, login and logout flows.
type AuthHandler struct {
	auth       ports.AuthService
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Username  string `form:"username" validate:"required"`
	Password  string `form:"password" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
	Role      string `form:"role" validate:"required"`
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterForm returns the data the registration view renders.
//
// @Summary      Registration form data
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"roles":   []domain.Role{domain.RoleAdmin, domain.RoleJeng, domain.RoleUser},
		"notices": flash.PopAll(c),
	})
}

// Register processes the registration form.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        name       formData  string  true   "Full name"
// @Param        email      formData  string  true   "Email address"
// @Param        username   formData  string  true   "Username"
// @Param        password   formData  string  true   "Password"
// @Param        password2  formData  string  true   "Password confirmation"
// @Param        role       formData  string  true   "Role (admin, jeng or user)"
// @Success      303
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		flash.Set(c, flash.Error, "invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&req); err != nil {
		flash.Set(c, flash.Error, err.Error())
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		flash.Set(c, flash.Error, "role option is required")
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	_, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			flash.Set(c, flash.Error, "username or email already taken")
			return c.Redirect(http.StatusSeeOther, "/register")
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	flash.Set(c, flash.Success, "You are successfully registered and can log in")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm returns the data the login view renders.
//
// @Summary      Login form data
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"notices": flash.PopAll(c),
	})
}

// Login authenticates the credentials and redirects by role: admin to
// /admin, jeng to /jeng, everyone else home. Unknown user and wrong
// password surface the same generic notice.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		flash.Set(c, flash.Error, "invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, err := h.auth.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			flash.Set(c, flash.Error, "Invalid username or password")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return err
	}

	token, err := h.auth.IssueSession(c.Request().Context(), user)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, user.Role.LandingPath())
}

// Logout revokes the session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.auth.RevokeSession(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	flash.Set(c, flash.Success, "You are logged out")
	return c.Redirect(http.StatusSeeOther, "/login")
}
