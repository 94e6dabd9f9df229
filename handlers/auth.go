package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity is the authenticated caller as reported by the external
// identity provider.
type Identity struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// IdentityProvider resolves the caller's identity from a request. Nil
// identity with nil error means the caller is anonymous. Injected into the
// middleware so tests can bind identities without the external provider.
type IdentityProvider interface {
	Identify(r *http.Request) (*Identity, error)
}

// TokenIdentityProvider reads the identity provider's bearer ID token.
// Authentication is delegated entirely to the provider, so the claims are
// trusted verbatim and the signature is not verified here.
type TokenIdentityProvider struct{}

func (TokenIdentityProvider) Identify(r *http.Request) (*Identity, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimPrefix(header, "Bearer "), claims); err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, nil
	}
	name, _ := claims["name"].(string)
	photo, _ := claims["picture"].(string)

	return &Identity{Email: email, DisplayName: name, PhotoURL: photo}, nil
}

// IdentityBinding resolves the caller's identity once per request and
// stores it in the context for write paths to stamp authorship from.
func IdentityBinding(provider IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := provider.Identify(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid identity token"})
			c.Abort()
			return
		}
		if identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// RequireIdentity guards write paths that stamp authorship. A client-sent
// email in the body is never a substitute for the bound identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(identityKey); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Must be signed in"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity bound to the request, or nil for
// anonymous callers.
func CurrentIdentity(c *gin.Context) *Identity {
	if v, exists := c.Get(identityKey); exists {
		return v.(*Identity)
	}
	return nil
}
