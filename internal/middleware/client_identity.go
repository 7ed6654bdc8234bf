package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ClientIdentityConfig controls how ClientIdentity recognises a storefront client.
type ClientIdentityConfig struct {
	JWTSecret    string // empty disables bearer-token identities
	CookieName   string
	CookieMaxAge int // seconds
	SecureCookie bool
}

// ClientIdentity resolves the preference namespace for the caller.
// A valid bearer token yields "user:<subject>". Anything else falls back to an
// anonymous "client:<uuid>" held in a cookie, which is issued when missing.
// Invalid tokens are never rejected here; this service does not authenticate.
func ClientIdentity(cfg ClientIdentityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		namespace := ""
		if subject, ok := bearerSubject(c.GetHeader("Authorization"), cfg.JWTSecret, logger); ok {
			namespace = "user:" + subject
		} else {
			namespace = "client:" + clientCookieID(c, cfg)
		}

		ctx := context.WithValue(c.Request.Context(), clientNamespaceKey, namespace)
		ctx = WithLogger(ctx, logger.With(slog.String("client_namespace", namespace)))
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(clientNamespaceKey), namespace)

		c.Next()
	}
}

// clientCookieID returns the anonymous client ID from the cookie, issuing a fresh one if needed.
func clientCookieID(c *gin.Context, cfg ClientIdentityConfig) string {
	if raw, err := c.Cookie(cfg.CookieName); err == nil {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, id, cfg.CookieMaxAge, "/", "", cfg.SecureCookie, true)
	return id
}

// bearerSubject extracts the subject of a valid HS256 bearer token.
func bearerSubject(authHeader, secret string, logger *slog.Logger) (string, bool) {
	if secret == "" || authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		logger.Debug("Authorization header format invalid, using anonymous client")
		return "", false
	}

	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		logger.Debug("Ignoring invalid bearer token", slog.String("error", err.Error()))
		return "", false
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
