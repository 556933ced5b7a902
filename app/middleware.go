package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Someshsw1109/soundwave-backend/auth"
	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Authenticate rejects the request with 401 unless it carries a valid,
// unrevoked bearer token. The token subject is stored on the context.
func (app *Application) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, models.ErrNoToken)
		}

		if err := app.authenticate(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate identifies the requester when a valid token is
// present and lets anonymous requests through otherwise.
func (app *Application) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := bearerToken(c.Request()); token != "" {
			if err := app.authenticate(c, token); err != nil {
				var he *echo.HTTPError
				if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
					return err
				}
			}
		}

		return next(c)
	}
}

func (app *Application) authenticate(c echo.Context, token string) error {
	claims, err := app.Tokens.Verify(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken).SetInternal(err)
	}

	if app.TokenStore != nil {
		revoked, err := app.TokenStore.IsRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return err
		}

		if revoked {
			return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken)
		}
	}

	setRequester(c, claims)

	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

func (app *Application) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			}

			if userID := requesterID(c); userID != "" {
				fields["user_id"] = userID
			}

			entry := app.Log.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}

			entry.Info("request")

			return nil
		},
	})
}
