package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vetcareer-backend/internal/delivery/http/response"
	"vetcareer-backend/internal/domain"
	"vetcareer-backend/pkg/token"
)

// SessionCookie is the cookie carrying the session token. A Bearer header
// takes precedence when both are present.
const SessionCookie = "session_token"

// AuthMiddleware validates the session token and requires the resident
// identity it was issued for. Tokens issued before a logout fail here even
// when still within their lifetime, because the resident identity is gone.
func AuthMiddleware(signer *token.Signer, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or session cookie required", nil)
			c.Abort()
			return
		}

		identityID, err := signer.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session token", nil)
			c.Abort()
			return
		}

		identity, err := sessionRepo.Load(c.Request.Context())
		if err != nil || identity == nil || identity.ID != identityID {
			response.Error(c, http.StatusUnauthorized, "Session has ended. Please sign in again.", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.ID)
		c.Set(string(domain.KeyUserName), identity.Name)
		c.Set(string(domain.KeyUserRole), identity.Role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, identity.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, identity.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
