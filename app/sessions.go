package app

import (
	"github.com/Someshsw1109/soundwave-backend/auth"
	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "user_id"
	claimsKey = "claims"
)

func setRequester(c echo.Context, claims *auth.Claims) {
	c.Set(userIDKey, claims.UserID)
	c.Set(claimsKey, claims)
}

// requesterID is empty for anonymous requests.
func requesterID(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}

func requesterClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}
