package app

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (app *Application) HandleCreatePlaylist(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.CreatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrPlaylistNameRequired)
	}

	now := app.now()
	playlist := &models.PlaylistDBModel{
		ID:          uuid.NewString(),
		Name:        name,
		Description: req.Description,
		OwnerID:     requesterID(c),
		Tracks:      datatypes.JSONSlice[models.Track]{},
		IsPublic:    req.IsPublic,
		Cover:       req.Cover,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := app.PlaylistStore.Create(ctx, playlist); err != nil {
		return err
	}

	return app.respondWithPlaylist(c, http.StatusCreated, playlist)
}

func (app *Application) HandleListMyPlaylists(c echo.Context) error {
	ctx := c.Request().Context()

	playlists, err := app.PlaylistStore.ListForMember(ctx, requesterID(c))
	if err != nil {
		return err
	}

	return app.respondWithPlaylists(c, playlists)
}

// HandleListUserPlaylists lists what the user owns or collaborates on,
// leaving out private playlists the requester is not part of.
func (app *Application) HandleListUserPlaylists(c echo.Context) error {
	ctx := c.Request().Context()
	userID := pathParam(c, "userId")
	viewer := requesterID(c)

	playlists, err := app.PlaylistStore.ListForMember(ctx, userID)
	if err != nil {
		return err
	}

	if viewer != userID {
		playlists, err = app.filterViewable(ctx, playlists, viewer)
		if err != nil {
			return err
		}
	}

	return app.respondWithPlaylists(c, playlists)
}

func (app *Application) HandleGetPlaylist(c echo.Context) error {
	ctx := c.Request().Context()

	playlist, err := app.getPlaylist(ctx, pathParam(c, "playlistId"))
	if err != nil {
		return err
	}

	ok, err := app.canView(ctx, playlist, requesterID(c))
	if err != nil {
		return err
	}

	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrPlaylistNotFound)
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

func (app *Application) HandleAddTrack(c echo.Context) error {
	ctx := c.Request().Context()

	playlist, err := app.getEditablePlaylist(c)
	if err != nil {
		return err
	}

	var req models.TrackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	if req.Track == nil || !req.Track.HasIdentifier() {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrTrackRequired)
	}

	for _, t := range playlist.Tracks {
		if t.Matches(*req.Track) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrTrackAlreadyInPlaylist)
		}
	}

	now := app.now()
	track := *req.Track
	track.AddedAt = &now

	tracks := make(datatypes.JSONSlice[models.Track], 0, len(playlist.Tracks)+1)
	tracks = append(tracks, playlist.Tracks...)
	tracks = append(tracks, track)

	if err := app.saveTracks(ctx, playlist, tracks); err != nil {
		return err
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

// HandleRemoveTrack drops every entry matching the track id. Removing an
// absent track still succeeds and still bumps updatedAt.
func (app *Application) HandleRemoveTrack(c echo.Context) error {
	ctx := c.Request().Context()
	trackID := pathParam(c, "trackId")

	playlist, err := app.getEditablePlaylist(c)
	if err != nil {
		return err
	}

	tracks := make(datatypes.JSONSlice[models.Track], 0, len(playlist.Tracks))
	for _, t := range playlist.Tracks {
		if !t.Identified(trackID) {
			tracks = append(tracks, t)
		}
	}

	if err := app.saveTracks(ctx, playlist, tracks); err != nil {
		return err
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

// HandleUpdatePlaylist replaces the metadata: omitted description and flags
// are cleared rather than kept.
func (app *Application) HandleUpdatePlaylist(c echo.Context) error {
	ctx := c.Request().Context()

	playlist, err := app.getOwnedPlaylist(c)
	if err != nil {
		return err
	}

	var req models.UpdatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest).SetInternal(err)
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrPlaylistNameRequired)
	}

	playlist.Name = strings.TrimSpace(*req.Name)
	playlist.Description = valueOrZero(req.Description)
	playlist.IsPublic = valueOrZero(req.IsPublic)
	playlist.IsCollaborative = valueOrZero(req.IsCollaborative)
	playlist.UpdatedAt = app.now()

	if err := app.PlaylistStore.Update(ctx, map[string]any{
		"name":             playlist.Name,
		"description":      playlist.Description,
		"is_public":        playlist.IsPublic,
		"is_collaborative": playlist.IsCollaborative,
		"updated_at":       playlist.UpdatedAt,
	}, "id = ?", playlist.ID); err != nil {
		return err
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

func (app *Application) HandleDeletePlaylist(c echo.Context) error {
	playlist, err := app.getOwnedPlaylist(c)
	if err != nil {
		return err
	}

	if err := app.PlaylistStore.Delete(c.Request().Context(), playlist.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrPlaylistNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Playlist deleted"})
}

func (app *Application) HandleAddCollaborator(c echo.Context) error {
	ctx := c.Request().Context()
	userID := pathParam(c, "userId")

	playlist, err := app.getOwnedPlaylist(c)
	if err != nil {
		return err
	}

	if userID == playlist.OwnerID {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrOwnerIsNotCollaborator)
	}

	exists, err := app.UserStore.IsExists(ctx, "id = ?", userID)
	if err != nil {
		return err
	}

	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotExists)
	}

	already, err := app.isCollaborator(ctx, playlist, userID)
	if err != nil {
		return err
	}

	if already {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyCollaborator)
	}

	if err := app.PlaylistStore.AddMember(ctx, playlist.ID, userID, models.RoleCollaborator); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyCollaborator)
		}
		return err
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

func (app *Application) HandleRemoveCollaborator(c echo.Context) error {
	playlist, err := app.getOwnedPlaylist(c)
	if err != nil {
		return err
	}

	if err := app.PlaylistStore.RemoveMember(c.Request().Context(), playlist.ID, pathParam(c, "userId"), models.RoleCollaborator); err != nil {
		return err
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

func (app *Application) HandleFollowPlaylist(c echo.Context) error {
	ctx := c.Request().Context()
	userID := requesterID(c)

	playlist, err := app.getPlaylist(ctx, pathParam(c, "playlistId"))
	if err != nil {
		return err
	}

	ok, err := app.canView(ctx, playlist, userID)
	if err != nil {
		return err
	}

	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, models.ErrPlaylistNotFound)
	}

	following, err := app.PlaylistStore.IsMember(ctx, playlist.ID, userID, models.RoleFollower)
	if err != nil {
		return err
	}

	if following {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyFollowsPlaylist)
	}

	if err := app.PlaylistStore.AddMember(ctx, playlist.ID, userID, models.RoleFollower); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrAlreadyFollowsPlaylist)
		}
		return err
	}

	return app.respondWithPlaylist(c, http.StatusOK, playlist)
}

func (app *Application) HandleUnfollowPlaylist(c echo.Context) error {
	ctx := c.Request().Context()

	playlist, err := app.getPlaylist(ctx, pathParam(c, "playlistId"))
	if err != nil {
		return err
	}

	if err := app.PlaylistStore.RemoveMember(ctx, playlist.ID, requesterID(c), models.RoleFollower); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Unfollowed playlist"})
}

func (app *Application) getPlaylist(ctx context.Context, playlistID string) (*models.PlaylistDBModel, error) {
	playlist, err := app.PlaylistStore.GetOne(ctx, "id = ?", playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, models.ErrPlaylistNotFound)
		}
		return nil, err
	}

	return playlist, nil
}

// getEditablePlaylist loads the playlist from the path and fails with 403
// unless the requester owns it or collaborates on it.
func (app *Application) getEditablePlaylist(c echo.Context) (*models.PlaylistDBModel, error) {
	ctx := c.Request().Context()

	playlist, err := app.getPlaylist(ctx, pathParam(c, "playlistId"))
	if err != nil {
		return nil, err
	}

	ok, err := app.canEditTracks(ctx, playlist, requesterID(c))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, models.ErrNotAuthorized)
	}

	return playlist, nil
}

func (app *Application) getOwnedPlaylist(c echo.Context) (*models.PlaylistDBModel, error) {
	playlist, err := app.getPlaylist(c.Request().Context(), pathParam(c, "playlistId"))
	if err != nil {
		return nil, err
	}

	if playlist.OwnerID != requesterID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, models.ErrNotAuthorized)
	}

	return playlist, nil
}

// saveTracks writes the whole track list back. Concurrent edits of the same
// playlist are last-writer-wins.
func (app *Application) saveTracks(ctx context.Context, playlist *models.PlaylistDBModel, tracks datatypes.JSONSlice[models.Track]) error {
	now := app.now()

	if err := app.PlaylistStore.Update(ctx, map[string]any{
		"tracks":     tracks,
		"updated_at": now,
	}, "id = ?", playlist.ID); err != nil {
		return err
	}

	playlist.Tracks = tracks
	playlist.UpdatedAt = now

	return nil
}

func (app *Application) respondWithPlaylist(c echo.Context, status int, playlist *models.PlaylistDBModel) error {
	res, err := app.populatePlaylist(c.Request().Context(), playlist)
	if err != nil {
		return err
	}

	return c.JSON(status, res)
}

func (app *Application) respondWithPlaylists(c echo.Context, playlists []models.PlaylistDBModel) error {
	res, err := app.populatePlaylists(c.Request().Context(), playlists)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func valueOrZero[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
