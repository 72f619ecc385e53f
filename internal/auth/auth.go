// Package auth resolves the caller identity from the bearer token attached
// to a request. Issuing tokens to end users is the job of a separate identity
// service; the Manager here only needs the shared signing secret.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ownerKey is the gin context key under which the guard stores the caller id.
const ownerKey = "owner"

// Claims carries the authenticated user's id inside a signed token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies the HS256 bearer tokens accepted by the service.
type Manager struct {
	secret []byte
}

// NewManager creates a token manager for the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// GenerateToken issues a token for the given user id. It exists for the
// benchmark client and the tests; production tokens come from the identity
// service that shares the signing secret.
func (m *Manager) GenerateToken(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ResolveIdentity verifies a token and returns the user id it was issued for.
func (m *Manager) ResolveIdentity(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// resolved caller id on the context for the handlers.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		userID, err := m.ResolveIdentity(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		c.Set(ownerKey, userID)
		c.Next()
	}
}

// Owner returns the caller id the guard stored on the context. It is empty
// only if the guard did not run.
func Owner(c *gin.Context) string {
	return c.GetString(ownerKey)
}
