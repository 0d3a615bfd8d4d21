package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"AssetVerse-backend/internal/platform/apierr"
)

const CtxEmailKey = "verified_email"

// RequireAuth: verifies Authorization: Bearer <token> and stores the verified
// email in the context.
func RequireAuth(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			apierr.Respond(c, apierr.ErrUnauthenticated("missing Authorization header"))
			return
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierr.Respond(c, apierr.ErrUnauthenticated("invalid Authorization header"))
			return
		}

		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			apierr.Respond(c, apierr.ErrUnauthenticated("empty token"))
			return
		}

		email, err := v.Verify(tokenStr)
		if err != nil {
			apierr.Respond(c, apierr.ErrInvalidToken("invalid token"))
			return
		}

		c.Set(CtxEmailKey, email)
		c.Next()
	}
}

// Email returns the verified email set by RequireAuth.
func Email(c *gin.Context) string {
	return c.GetString(CtxEmailKey)
}

// SameEmail reports whether target names the verified identity.
func SameEmail(c *gin.Context, target string) bool {
	v := Email(c)
	return v != "" && strings.EqualFold(v, strings.TrimSpace(target))
}

// ScopeQueryEmail reads the email query parameter. When present it must match
// the verified identity.
func ScopeQueryEmail(c *gin.Context) (string, error) {
	q := strings.TrimSpace(c.Query("email"))
	if q == "" {
		return "", nil
	}
	if !SameEmail(c, q) {
		return "", apierr.ErrForbidden("forbidden access")
	}
	return strings.ToLower(q), nil
}
