package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HTTPErrorHandler renders every error as {"error": message}. Errors that
// are not an *echo.HTTPError surface their raw message with a 500.
func (app *Application) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		message = httpErrorMessage(he)
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		message = "record not found"
	}

	if code >= http.StatusInternalServerError {
		app.Log.WithError(err).WithField("uri", c.Request().RequestURI).Error("internal error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, models.ErrorResponse{Error: message})
	}

	if err != nil {
		app.Log.WithError(err).Error("failed to write error response")
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
