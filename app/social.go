package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (app *Application) HandleFollow(c echo.Context) error {
	ctx := c.Request().Context()
	userID := requesterID(c)
	targetID := pathParam(c, "userId")

	if userID == targetID {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrCannotFollowSelf)
	}

	if err := app.ensureUserExists(ctx, targetID); err != nil {
		return err
	}

	following, err := app.FollowStore.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return err
	}

	if following {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyFollowing)
	}

	if err := app.FollowStore.Follow(ctx, userID, targetID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyFollowing)
		}
		return err
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Successfully followed user"})
}

// HandleUnfollow succeeds even when there was no edge to remove.
func (app *Application) HandleUnfollow(c echo.Context) error {
	ctx := c.Request().Context()
	targetID := pathParam(c, "userId")

	if err := app.ensureUserExists(ctx, targetID); err != nil {
		return err
	}

	if err := app.FollowStore.Unfollow(ctx, requesterID(c), targetID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Successfully unfollowed user"})
}

func (app *Application) HandleFollowers(c echo.Context) error {
	ctx := c.Request().Context()
	userID := pathParam(c, "userId")

	if err := app.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	followers, err := app.FollowStore.Followers(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.NewFollowSummaries(followers))
}

func (app *Application) HandleFollowing(c echo.Context) error {
	ctx := c.Request().Context()
	userID := pathParam(c, "userId")

	if err := app.ensureUserExists(ctx, userID); err != nil {
		return err
	}

	following, err := app.FollowStore.Following(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.NewFollowSummaries(following))
}

// HandleRecommendations returns public playlists owned by the users the
// requester follows.
func (app *Application) HandleRecommendations(c echo.Context) error {
	ctx := c.Request().Context()

	ids, err := app.FollowStore.FollowingIDs(ctx, requesterID(c))
	if err != nil {
		return err
	}

	playlists, err := app.PlaylistStore.ListPublicByOwners(ctx, ids, recommendationsLimit)
	if err != nil {
		return err
	}

	return app.respondWithPlaylists(c, playlists)
}

func (app *Application) ensureUserExists(ctx context.Context, userID string) error {
	exists, err := app.UserStore.IsExists(ctx, "id = ?", userID)
	if err != nil {
		return err
	}

	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotExists)
	}

	return nil
}
