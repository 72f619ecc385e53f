package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret"

// runGuardedRequest sends a request through a router protected by the guard
// and records which owner the handler saw.
func runGuardedRequest(manager *Manager, header string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	var seenOwner string
	router.GET("/", manager.Middleware(), func(c *gin.Context) {
		seenOwner = Owner(c)
		c.Status(http.StatusOK)
	})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest("GET", "/", nil)
	if header != "" {
		request.Header.Set("Authorization", header)
	}
	router.ServeHTTP(recorder, request)
	return recorder, seenOwner
}

// TestTokenRoundTrip checks that a generated token resolves back to the user
// id it was issued for.
func TestTokenRoundTrip(t *testing.T) {
	manager := NewManager(testSecret)
	token, err := manager.GenerateToken("user-42")
	assert.NoError(t, err)

	userID, err := manager.ResolveIdentity(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

// TestResolveIdentityRejectsGarbage checks that a malformed token does not
// resolve to an identity.
func TestResolveIdentityRejectsGarbage(t *testing.T) {
	manager := NewManager(testSecret)
	_, err := manager.ResolveIdentity("not.a.token")
	assert.Error(t, err)
}

// TestResolveIdentityRejectsForeignSecret checks that a token signed with a
// different secret is rejected.
func TestResolveIdentityRejectsForeignSecret(t *testing.T) {
	foreign := NewManager("some-other-secret")
	token, err := foreign.GenerateToken("user-42")
	assert.NoError(t, err)

	manager := NewManager(testSecret)
	_, err = manager.ResolveIdentity(token)
	assert.Error(t, err)
}

// TestMiddlewareRejectsMissingHeader checks that a request without an
// Authorization header is answered with 401 before the handler runs.
func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	manager := NewManager(testSecret)
	recorder, seenOwner := runGuardedRequest(manager, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, seenOwner)
}

// TestMiddlewareRejectsWrongScheme checks that only bearer credentials are
// accepted.
func TestMiddlewareRejectsWrongScheme(t *testing.T) {
	manager := NewManager(testSecret)
	recorder, seenOwner := runGuardedRequest(manager, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, seenOwner)
}

// TestMiddlewareRejectsInvalidToken checks that a tampered token is rejected.
func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	manager := NewManager(testSecret)
	recorder, seenOwner := runGuardedRequest(manager, "Bearer invalid")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, seenOwner)
}

// TestMiddlewareResolvesOwner checks that a valid token lets the request
// through with the caller id stored on the context.
func TestMiddlewareResolvesOwner(t *testing.T) {
	manager := NewManager(testSecret)
	token, err := manager.GenerateToken("user-42")
	assert.NoError(t, err)

	recorder, seenOwner := runGuardedRequest(manager, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-42", seenOwner)
}
