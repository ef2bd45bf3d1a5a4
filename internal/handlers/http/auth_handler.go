package http

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/handlers/dto"
	"github.com/rafabene/docrepo-backend/internal/handlers/middleware"
	"github.com/rafabene/docrepo-backend/internal/services"
)

type authenticator interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
}

type userLookup interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

// CookieSettings configura o cookie de sessão
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthHandler lida com login e logout
type AuthHandler struct {
	auth   authenticator
	users  userLookup
	cookie CookieSettings
	logger ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(auth authenticator, users userLookup, cookie CookieSettings, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		users:  users,
		cookie: cookie,
		logger: logger,
	}
}

// Session godoc
// @Summary      Sessão atual
// @Description  Informa se há sessão válida e devolve o usuário autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /login [get]
func (h *AuthHandler) Session(c *gin.Context) {
	identity := middleware.CurrentSession(c)
	if identity == nil {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), identity.UserID)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	response := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, User: &response})
}

// Login godoc
// @Summary      Login
// @Description  Valida email e senha e grava o cookie de sessão. Navegadores são redirecionados para /clients.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credenciais"
// @Success      200      {object}  dto.LoginResponse
// @Success      303
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rejectLogin(c)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnauthenticated) {
			h.rejectLogin(c)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	h.setCookie(c, session.Token, time.Until(session.ExpiresAt))

	if !middleware.WantsJSON(c) {
		c.Redirect(http.StatusSeeOther, ClientsPath)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.ToUserResponse(session.User),
	})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ActionResult
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -time.Second)
	respondAction(c, h.logger, middleware.LoginPath, true, nil)
}

func (h *AuthHandler) rejectLogin(c *gin.Context) {
	if !middleware.WantsJSON(c) {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath+"?error=credentials")
		return
	}
	respondError(c, h.logger, errors.ErrInvalidCredentials)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
