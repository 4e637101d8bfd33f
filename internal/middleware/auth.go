package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/jwtutil"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
	"go.uber.org/zap"
)

// resolveCaller extracts the caller id from a bearer token if one is present.
// The second return distinguishes "no token" from "bad token".
func resolveCaller(c echo.Context) (uint, bool, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return 0, false, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return 0, true, jwtutil.ErrMalformedHeader
	}

	claims, err := jwtutil.ValidateToken(parts[1])
	if err != nil {
		return 0, true, err
	}
	return claims.UserID, true, nil
}

// RequireAuth rejects any request without a valid bearer token and stores
// the resolved caller id in the context.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		callerID, present, err := resolveCaller(c)
		if !present {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}
		if err != nil {
			log.Warn("Invalid bearer token", zap.Error(err))
			prometheus.RecordAuthError()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}

		c.Set("caller_id", callerID)
		return next(c)
	}
}

// OptionalAuth resolves the caller when a token is present but never rejects
// the request. Routes that mix public reads with owner-only writes use this
// and let the authorization gate decide.
func OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, present, err := resolveCaller(c)
		if present && err == nil {
			c.Set("caller_id", callerID)
		}
		return next(c)
	}
}

// CallerID returns the resolved caller id, zero when the request is anonymous
func CallerID(c echo.Context) uint {
	callerID, ok := c.Get("caller_id").(uint)
	if !ok {
		return 0
	}
	return callerID
}
