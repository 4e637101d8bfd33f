// Package handler contains the echo HTTP handlers. Handlers bind and
// validate input, delegate to the services and repositories, and translate
// typed errors into the wire shape {message, errors?}.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"go.uber.org/zap"
)

// respondError normalizes any error into the response body shape. Unexpected
// errors are logged with their cause but reach the client as a generic
// internal error.
func respondError(c echo.Context, err error) error {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		logger.FromEcho(c).Error("Request failed", zap.Error(err))
	}

	body := echo.Map{"message": appErr.Message}
	if len(appErr.Errors) > 0 {
		body["errors"] = appErr.Errors
	}
	return c.JSON(appErr.HTTPStatus(), body)
}

// respondValidation rejects a request whose payload failed validation,
// listing every failed rule
func respondValidation(c echo.Context, errs []string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"message": "Validation failed",
		"errors":  errs,
	})
}

// respondBadRequest rejects a request that could not be parsed at all
func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": message})
}

// paramID parses a numeric path parameter
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("Invalid " + name)
	}
	return uint(id), nil
}
