package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-api/internal/api/middleware"
	"github.com/99minutos/shop-api/internal/core/ports"
	"github.com/99minutos/shop-api/pkg/logger"
)

// CookieConfig controls the session cookie written on register and login.
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles account registration and session lifecycle.
type AuthHandler struct {
	svc    ports.AuthService
	cookie CookieConfig
}

func NewAuthHandler(svc ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie}
}

// Register godoc
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account data"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, res.Token)
	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(res.User)})
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, res.Token)
	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(res.User)})
}

// Logout godoc
// @Summary      End the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		ctx := c.Request().Context()
		// The cookie is cleared regardless; a token that could not be revoked
		// stays valid until it expires.
		if err := h.svc.Logout(ctx, cookie.Value); err != nil {
			logger.FromContext(ctx).Warn().
				Err(err).
				Msg("logout: session token not revoked, valid until expiry")
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, authResponse{Message: "Logged out"})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		Expires:  time.Now().Add(h.cookie.TTL),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
