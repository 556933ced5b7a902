package models

import "time"

// UserSummary is the populated form of a user reference inside profiles and
// playlists.
type UserSummary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// FollowSummary is an entry of the follower and following listings.
type FollowSummary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

type UserProfile struct {
	ID        string        `json:"_id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar"`
	Bio       string        `json:"bio"`
	IsPublic  bool          `json:"isPublic"`
	Followers []UserSummary `json:"followers"`
	Following []UserSummary `json:"following"`
	LastLogin *time.Time    `json:"lastLogin,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RestrictedProfile is what everybody gets for a private user.
type RestrictedProfile struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	IsPublic bool   `json:"isPublic"`
}

type UserSearchResult struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar"`
	Bio       string   `json:"bio"`
	Followers []string `json:"followers"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type VerifyResponse struct {
	Valid bool        `json:"valid"`
	User  UserProfile `json:"user"`
}

type PlaylistResponse struct {
	ID              string        `json:"_id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Owner           UserSummary   `json:"owner"`
	Tracks          []Track       `json:"tracks"`
	Followers       []UserSummary `json:"followers"`
	Collaborators   []UserSummary `json:"collaborators"`
	IsPublic        bool          `json:"isPublic"`
	IsCollaborative bool          `json:"isCollaborative"`
	Cover           string        `json:"cover,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type FavoriteResponse struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Track     Track     `json:"track"`
	CreatedAt time.Time `json:"createdAt"`
}

type FavoriteCheckResponse struct {
	IsFavorited bool `json:"isFavorited"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewUserSummary(u UserDBModel) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

func NewUserSummaries(users []UserDBModel) []UserSummary {
	res := make([]UserSummary, 0, len(users))
	for _, u := range users {
		res = append(res, NewUserSummary(u))
	}
	return res
}

func NewFollowSummaries(users []UserDBModel) []FollowSummary {
	res := make([]FollowSummary, 0, len(users))
	for _, u := range users {
		res = append(res, FollowSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Bio: u.Bio})
	}
	return res
}

func NewRestrictedProfile(u UserDBModel) RestrictedProfile {
	return RestrictedProfile{
		ID:       u.ID,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
		IsPublic: u.IsPublic,
	}
}

func NewFavoriteResponse(f FavoriteDBModel) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		User:      f.UserID,
		Track:     f.Track.Data(),
		CreatedAt: f.CreatedAt,
	}
}
