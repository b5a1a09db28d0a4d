package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/config"
	"vetcareer-backend/internal/delivery/http/middleware"
	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/apperror"
	"vetcareer-backend/pkg/token"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	signer *token.Signer
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, signer *token.Signer, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		signer: signer,
		config: cfg,
	}

	auth := public.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/register", handler.Register)
		auth.POST("/logout", handler.Logout)
		auth.GET("/session", handler.Session)
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,valid_name,no_emoji"`
	Identifier string `json:"identifier" binding:"required,service_id"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,identity_role"`
}

// sessionPayload is what login, register and session restore answer with.
// Redirect is a hint; navigation stays with the client.
type sessionPayload struct {
	User     *domain.Identity `json:"user"`
	Token    string           `json:"token,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
}

// Login godoc
// @Summary      Sign in
// @Description  Sign in with a service ID or email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity, err := h.authUC.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	signed, err := h.signer.Issue(identity)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.setSessionCookie(c, signed)

	response.Success(c, http.StatusOK, "Login successful", sessionPayload{
		User:     identity,
		Token:    signed,
		Redirect: "/profile",
	})
}

// Register godoc
// @Summary      Register
// @Description  Create an account and sign in immediately
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration  body      RegisterRequest  true  "Registration JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity, err := h.authUC.Register(c.Request.Context(), req.Name, req.Identifier, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	signed, err := h.signer.Issue(identity)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.setSessionCookie(c, signed)

	response.Success(c, http.StatusCreated, "Registration successful", sessionPayload{
		User:     identity,
		Token:    signed,
		Redirect: "/profile",
	})
}

// Logout godoc
// @Summary      Sign out
// @Description  Clear the resident session. Safe to call without one.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookies(), true)

	response.Success(c, http.StatusOK, "Logged out", sessionPayload{Redirect: "/"})
}

// Session godoc
// @Summary      Restore session
// @Description  Return the resident identity, or a null user when none
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	identity, err := h.authUC.RestoreSession(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	if identity == nil {
		response.Success(c, http.StatusOK, "No active session", sessionPayload{})
		return
	}
	response.Success(c, http.StatusOK, "Session restored", sessionPayload{User: identity})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, signed string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, signed, int(h.signer.TTL().Seconds()), "/", "", h.secureCookies(), true)
}

func (h *AuthHandler) secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}
