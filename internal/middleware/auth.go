package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/pause-manager/internal/config"
	"github.com/BruksfildServices01/pause-manager/internal/httperr"
)

const (
	ContextActor    = "actor"
	ContextUserRole = "userRole"

	anonymousActor = "anonymous"
)

// AuthMiddleware valida o bearer token emitido por um provedor externo.
// Sem JWT_SECRET o hook fica desligado e o ator é "anonymous".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	if !cfg.AuthEnabled() {
		return func(c *gin.Context) {
			c.Set(ContextActor, anonymousActor)
			c.Next()
		}
	}

	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentification requise")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "En-tête d'autorisation invalide")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Jeton invalide ou expiré")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Jeton invalide")
			c.Abort()
			return
		}

		actor, ok := subject(claims["sub"])
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Jeton invalide")
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextActor, actor)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// subject aceita "sub" como string ou número.
func subject(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, s != ""
	case float64:
		return fmt.Sprintf("%.0f", s), true
	}
	return "", false
}

// Actor devolve quem fez a requisição, para auditoria.
func Actor(c *gin.Context) string {
	if v := c.GetString(ContextActor); v != "" {
		return v
	}
	return anonymousActor
}
