package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"viegrand-care/internal/model"
)

// Caller identity headers set by the mobile client after login.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	scopeKey = "scope"
)

// Scope builds a model.Scope from the identity headers. Missing headers yield
// an anonymous scope; use cases decide whether that is enough.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Email:  strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
			Role:   strings.TrimSpace(c.GetHeader(HeaderUserRole)),
		}
		if sc.UserID == "" {
			sc.UserID = "anonymous"
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope stored by Scope, or an anonymous one.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: "anonymous"}
}
