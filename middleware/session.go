package middleware

import (
	"strings"

	"festivo/config"
	"festivo/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Context keys set by SessionMiddleware.
const (
	ContextSessionID   = "sessionID"
	ContextAccountID   = "accountID"
	ContextCallerState = "callerState"
)

// SessionMiddleware establishes the caller's session identity. Every
// request carries a session ID (minted here when absent and echoed back in
// the response header). A valid bearer token upgrades the caller to
// has-account; the conflict state marks an account holder still carrying a
// device-local plan from before sign-in.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Header("X-Session-ID", sessionID)
		c.Set(ContextSessionID, sessionID)

		accountID := accountFromBearer(c.GetHeader("Authorization"))
		state := models.CallerAnonymous
		if accountID != "" {
			c.Set(ContextAccountID, accountID)
			state = models.CallerHasAccount
			if c.GetHeader("X-Local-Plan") == "1" {
				state = models.CallerConflict
			}
		} else if c.GetHeader("X-Local-Plan") == "1" {
			state = models.CallerHasLocalPlan
		}
		c.Set(ContextCallerState, state)

		c.Next()
	}
}

// accountFromBearer extracts the account ID from a signed token, returning
// empty on anything invalid. Authentication flows live elsewhere; this only
// maps an existing token onto a caller state.
func accountFromBearer(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// SessionID reads the session ID set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

// CallerState reads the caller state set by SessionMiddleware.
func CallerState(c *gin.Context) models.CallerState {
	if v, ok := c.Get(ContextCallerState); ok {
		if state, ok := v.(models.CallerState); ok {
			return state
		}
	}
	return models.CallerAnonymous
}

// OwnerID returns the plan owner key: the account when signed in, the
// session otherwise.
func OwnerID(c *gin.Context) string {
	if accountID := c.GetString(ContextAccountID); accountID != "" {
		return accountID
	}
	return SessionID(c)
}
