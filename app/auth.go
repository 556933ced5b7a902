package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Someshsw1109/soundwave-backend/auth"
	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (app *Application) HandleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrMissingFields)
	}

	exists, err := app.UserStore.IsExists(ctx, "email = ?", email)
	if err != nil {
		return err
	}

	if exists {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrUserAlreadyExists)
	}

	hash, err := auth.HashPassword(req.Password, app.Config.Auth.BcryptCost)
	if err != nil {
		return err
	}

	now := app.now()
	user := &models.UserDBModel{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hash,
		Name:      name,
		Avatar:    avatarURL(email),
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := app.UserStore.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrUserAlreadyExists)
		}
		return err
	}

	return app.respondWithToken(c, http.StatusCreated, user)
}

func (app *Application) HandleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrEmailPasswordRequired)
	}

	user, err := app.UserStore.GetOne(ctx, "email = ?", email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrUserNotExists)
		}
		return err
	}

	ok, err := auth.ComparePassword(user.Password, req.Password)
	if err != nil {
		return err
	}

	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidPassword)
	}

	now := app.now()
	if err := app.UserStore.Update(ctx, map[string]any{
		"last_login": now,
		"updated_at": now,
	}, "id = ?", user.ID); err != nil {
		return err
	}
	user.LastLogin = &now

	return app.respondWithToken(c, http.StatusOK, user)
}

func (app *Application) HandleVerify(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := app.UserStore.GetOne(ctx, "id = ?", requesterID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotExists)
		}
		return err
	}

	profile, err := app.profile(ctx, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.VerifyResponse{Valid: true, User: profile})
}

func (app *Application) HandleLogout(c echo.Context) error {
	claims := requesterClaims(c)

	if app.TokenStore != nil && claims != nil {
		if err := app.TokenStore.Revoke(c.Request().Context(), claims.ID, claims.TTL(app.now())); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

func (app *Application) respondWithToken(c echo.Context, status int, user *models.UserDBModel) error {
	token, _, err := app.Tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	profile, err := app.profile(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(status, models.AuthResponse{Token: token, User: profile})
}
