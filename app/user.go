package app

import (
	"errors"
	"net/http"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (app *Application) HandleGetMe(c echo.Context) error {
	return app.respondWithProfile(c, requesterID(c))
}

// HandleGetUser returns the full profile of public users only. Private users
// get the restricted projection, even when they ask for themselves.
func (app *Application) HandleGetUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := app.UserStore.GetOne(ctx, "id = ?", pathParam(c, "userId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotExists)
		}
		return err
	}

	if !user.IsPublic {
		return c.JSON(http.StatusOK, models.NewRestrictedProfile(*user))
	}

	profile, err := app.profile(ctx, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (app *Application) HandleUpdateMe(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	updates := map[string]any{"updated_at": app.now()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	userID := requesterID(c)
	if err := app.UserStore.Update(c.Request().Context(), updates, "id = ?", userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotExists)
		}
		return err
	}

	return app.respondWithProfile(c, userID)
}

func (app *Application) HandleSearchUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := app.UserStore.Search(ctx, pathParam(c, "query"), searchLimit)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	followers, err := app.FollowStore.FollowerIDsOf(ctx, ids)
	if err != nil {
		return err
	}

	res := make([]models.UserSearchResult, 0, len(users))
	for _, u := range users {
		res = append(res, models.UserSearchResult{
			ID:        u.ID,
			Name:      u.Name,
			Avatar:    u.Avatar,
			Bio:       u.Bio,
			Followers: followers[u.ID],
		})
	}

	return c.JSON(http.StatusOK, res)
}

func (app *Application) respondWithProfile(c echo.Context, userID string) error {
	ctx := c.Request().Context()

	user, err := app.UserStore.GetOne(ctx, "id = ?", userID)
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

	return c.JSON(http.StatusOK, profile)
}
