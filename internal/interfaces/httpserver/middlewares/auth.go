package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"gradpath-server/internal/domain"
	"gradpath-server/internal/domain/user"
	"gradpath-server/internal/interfaces/httpserver/responses"
)

const principalContextKey = "principal"

// AuthMiddleware validates HS256 bearer tokens issued for students. The
// token subject is the user's public ID; the account itself must exist.
func AuthMiddleware(users *user.Service, secret []byte, issuer string, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "authentication required")
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		}, jwt.WithIssuer(issuer))
		if err != nil || !token.Valid {
			logger.Warn().Err(err).Str("path", c.FullPath()).Msg("jwt validation failed")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "invalid token")
			return
		}

		usr, err := users.GetByPublicID(c.Request.Context(), claims.Subject)
		if err != nil {
			responses.HandleError(c, err, "failed to resolve account")
			return
		}
		if usr == nil {
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, nil, "unknown account")
			return
		}

		setPrincipal(c, domain.Principal{
			UserID:   usr.ID,
			PublicID: usr.PublicID,
			Email:    usr.Email,
			Name:     usr.Name,
		})
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}

func setPrincipal(c *gin.Context, principal domain.Principal) {
	c.Set(principalContextKey, principal)
	c.Set("user_id", principal.UserID)
	c.Set("user_email", principal.Email)
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("malformed authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
