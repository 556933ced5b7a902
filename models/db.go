package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleCollaborator = "collaborator"
	RoleFollower     = "follower"
)

type UserDBModel struct {
	ID        string     `gorm:"column:id;primaryKey"`
	Email     string     `gorm:"column:email;uniqueIndex;not null"`
	Password  string     `gorm:"column:password;not null"`
	Name      string     `gorm:"column:name;not null"`
	Avatar    string     `gorm:"column:avatar"`
	Bio       string     `gorm:"column:bio"`
	IsPublic  bool       `gorm:"column:is_public"`
	LastLogin *time.Time `gorm:"column:last_login"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

// FollowDBModel is one edge of the social graph. The follower's "following"
// set and the followee's "followers" set are both read from the same row.
type FollowDBModel struct {
	FollowerID string    `gorm:"column:follower_id;not null;uniqueIndex:idx_follows_edge"`
	FolloweeID string    `gorm:"column:followee_id;not null;uniqueIndex:idx_follows_edge;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

type PlaylistDBModel struct {
	ID              string                     `gorm:"column:id;primaryKey"`
	Name            string                     `gorm:"column:name;not null"`
	Description     string                     `gorm:"column:description"`
	OwnerID         string                     `gorm:"column:owner_id;index;not null"`
	Tracks          datatypes.JSONSlice[Track] `gorm:"column:tracks"`
	IsPublic        bool                       `gorm:"column:is_public"`
	IsCollaborative bool                       `gorm:"column:is_collaborative"`
	Cover           string                     `gorm:"column:cover"`
	CreatedAt       time.Time                  `gorm:"column:created_at"`
	UpdatedAt       time.Time                  `gorm:"column:updated_at"`
}

// PlaylistMemberDBModel holds both the collaborators and the followers of a
// playlist, told apart by Role.
type PlaylistMemberDBModel struct {
	PlaylistID string    `gorm:"column:playlist_id;not null;uniqueIndex:idx_playlist_members_member"`
	UserID     string    `gorm:"column:user_id;not null;uniqueIndex:idx_playlist_members_member;index"`
	Role       string    `gorm:"column:role;not null;uniqueIndex:idx_playlist_members_member"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

type FavoriteDBModel struct {
	ID        string                    `gorm:"column:id;primaryKey"`
	UserID    string                    `gorm:"column:user_id;not null;uniqueIndex:idx_favorites_user_track"`
	TrackKey  string                    `gorm:"column:track_key;not null;uniqueIndex:idx_favorites_user_track"`
	TrackID   string                    `gorm:"column:track_id;index"`
	Track     datatypes.JSONType[Track] `gorm:"column:track"`
	CreatedAt time.Time                 `gorm:"column:created_at;index"`
}
