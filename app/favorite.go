package app

import (
	"errors"
	"net/http"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (app *Application) HandleListFavorites(c echo.Context) error {
	favorites, err := app.FavoriteStore.ListByUser(c.Request().Context(), requesterID(c))
	if err != nil {
		return err
	}

	res := make([]models.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, models.NewFavoriteResponse(f))
	}

	return c.JSON(http.StatusOK, res)
}

func (app *Application) HandleAddFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	userID := requesterID(c)

	var req models.TrackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	if req.Track == nil || !req.Track.HasIdentifier() {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrTrackRequired)
	}
	track := *req.Track

	_, err := app.FavoriteStore.GetByTrack(ctx, userID, track.Key())
	switch {
	case err == nil:
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyFavorited)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	favorite := &models.FavoriteDBModel{
		ID:        uuid.NewString(),
		UserID:    userID,
		TrackKey:  track.Key(),
		TrackID:   track.ID,
		Track:     datatypes.NewJSONType(track),
		CreatedAt: app.now(),
	}

	if err := app.FavoriteStore.Create(ctx, favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyFavorited)
		}
		return err
	}

	return c.JSON(http.StatusCreated, models.NewFavoriteResponse(*favorite))
}

func (app *Application) HandleRemoveFavorite(c echo.Context) error {
	removed, err := app.FavoriteStore.DeleteByTrack(c.Request().Context(), requesterID(c), pathParam(c, "trackId"))
	if err != nil {
		return err
	}

	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrFavoriteNotFound)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Removed from favorites"})
}

func (app *Application) HandleCheckFavorite(c echo.Context) error {
	_, err := app.FavoriteStore.GetByTrack(c.Request().Context(), requesterID(c), pathParam(c, "trackId"))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return c.JSON(http.StatusOK, models.FavoriteCheckResponse{IsFavorited: err == nil})
}
