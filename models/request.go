package models

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest merges into the stored profile: nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	IsPublic *bool   `json:"isPublic"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
	Cover       string `json:"cover"`
}

// UpdatePlaylistRequest replaces the playlist metadata wholesale. Omitted
// description and flags are cleared; name is mandatory.
type UpdatePlaylistRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	IsPublic        *bool   `json:"isPublic"`
	IsCollaborative *bool   `json:"isCollaborative"`
}

type TrackRequest struct {
	Track *Track `json:"track"`
}
