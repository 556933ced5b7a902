package app

import (
	"context"
	"net/url"
	"strings"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

func avatarURL(email string) string {
	return avatarBaseURL + url.QueryEscape(email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// pathParam returns the decoded path parameter. Echo routes on URL.RawPath
// when it is set and the params are still escaped in that case only.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}

	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// profile builds the public projection of user with populated follower and
// following summaries.
func (app *Application) profile(ctx context.Context, user *models.UserDBModel) (models.UserProfile, error) {
	followers, err := app.FollowStore.Followers(ctx, user.ID)
	if err != nil {
		return models.UserProfile{}, err
	}

	following, err := app.FollowStore.Following(ctx, user.ID)
	if err != nil {
		return models.UserProfile{}, err
	}

	return models.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		IsPublic:  user.IsPublic,
		Followers: models.NewUserSummaries(followers),
		Following: models.NewUserSummaries(following),
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}, nil
}

// populatePlaylists resolves owners, collaborators and followers of every
// playlist with one query per kind.
func (app *Application) populatePlaylists(ctx context.Context, playlists []models.PlaylistDBModel) ([]models.PlaylistResponse, error) {
	res := make([]models.PlaylistResponse, 0, len(playlists))
	if len(playlists) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.ID)
	}

	collaborators, err := app.PlaylistStore.MemberIDs(ctx, ids, models.RoleCollaborator)
	if err != nil {
		return nil, err
	}

	followers, err := app.PlaylistStore.MemberIDs(ctx, ids, models.RoleFollower)
	if err != nil {
		return nil, err
	}

	userIDs := []string{}
	seen := map[string]bool{}
	collect := func(id string) {
		if !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}

	for _, p := range playlists {
		collect(p.OwnerID)
		for _, id := range collaborators[p.ID] {
			collect(id)
		}
		for _, id := range followers[p.ID] {
			collect(id)
		}
	}

	users, err := app.UserStore.Summaries(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	summaries := func(ids []string) []models.UserSummary {
		out := make([]models.UserSummary, 0, len(ids))
		for _, id := range ids {
			if u, ok := users[id]; ok {
				out = append(out, u)
			}
		}
		return out
	}

	for _, p := range playlists {
		owner, ok := users[p.OwnerID]
		if !ok {
			owner = models.UserSummary{ID: p.OwnerID}
		}

		tracks := []models.Track(p.Tracks)
		if tracks == nil {
			tracks = []models.Track{}
		}

		res = append(res, models.PlaylistResponse{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			Owner:           owner,
			Tracks:          tracks,
			Followers:       summaries(followers[p.ID]),
			Collaborators:   summaries(collaborators[p.ID]),
			IsPublic:        p.IsPublic,
			IsCollaborative: p.IsCollaborative,
			Cover:           p.Cover,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		})
	}

	return res, nil
}

func (app *Application) populatePlaylist(ctx context.Context, playlist *models.PlaylistDBModel) (models.PlaylistResponse, error) {
	res, err := app.populatePlaylists(ctx, []models.PlaylistDBModel{*playlist})
	if err != nil {
		return models.PlaylistResponse{}, err
	}

	return res[0], nil
}

func (app *Application) isCollaborator(ctx context.Context, playlist *models.PlaylistDBModel, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	return app.PlaylistStore.IsMember(ctx, playlist.ID, userID, models.RoleCollaborator)
}

// canEditTracks is true for the owner and for collaborators.
func (app *Application) canEditTracks(ctx context.Context, playlist *models.PlaylistDBModel, userID string) (bool, error) {
	if userID != "" && playlist.OwnerID == userID {
		return true, nil
	}

	return app.isCollaborator(ctx, playlist, userID)
}

// canView hides private playlists from everybody but their owner and
// collaborators.
func (app *Application) canView(ctx context.Context, playlist *models.PlaylistDBModel, userID string) (bool, error) {
	if playlist.IsPublic {
		return true, nil
	}

	return app.canEditTracks(ctx, playlist, userID)
}

func (app *Application) filterViewable(ctx context.Context, playlists []models.PlaylistDBModel, userID string) ([]models.PlaylistDBModel, error) {
	ids := make([]string, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.ID)
	}

	collaborators := map[string][]string{}
	if userID != "" {
		var err error
		collaborators, err = app.PlaylistStore.MemberIDs(ctx, ids, models.RoleCollaborator)
		if err != nil {
			return nil, err
		}
	}

	visible := make([]models.PlaylistDBModel, 0, len(playlists))
	for _, p := range playlists {
		if p.IsPublic || (userID != "" && p.OwnerID == userID) || contains(collaborators[p.ID], userID) {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

func contains(ids []string, id string) bool {
	if id == "" {
		return false
	}

	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
