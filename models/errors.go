package models

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingFields  = errors.New("missing required fields")
	ErrNoToken        = errors.New("no token provided")
	ErrNotAuthorized  = errors.New("not authorized")

	ErrEmailPasswordRequired = errors.New("email and password required")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrUserNotExists         = errors.New("user not found")
	ErrInvalidPassword       = errors.New("invalid password")

	ErrPlaylistNotFound       = errors.New("playlist not found")
	ErrPlaylistNameRequired   = errors.New("playlist name is required")
	ErrTrackRequired          = errors.New("track is required")
	ErrTrackAlreadyInPlaylist = errors.New("track already in playlist")
	ErrOwnerIsNotCollaborator = errors.New("owner cannot be a collaborator")
	ErrAlreadyCollaborator    = errors.New("user is already a collaborator")
	ErrAlreadyFollowsPlaylist = errors.New("already following playlist")

	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following")
)
