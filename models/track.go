package models

import "time"

// Track is a snapshot of a catalog track supplied by the client. It is copied
// into playlists and favorites as-is and never looked up anywhere else.
type Track struct {
	ID        string     `json:"id,omitempty"`
	Title     string     `json:"title,omitempty"`
	Artist    string     `json:"artist,omitempty"`
	Album     string     `json:"album,omitempty"`
	Image     string     `json:"image,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	URL       string     `json:"url,omitempty"`
	SpotifyID string     `json:"spotifyId,omitempty"`
	AddedAt   *time.Time `json:"addedAt,omitempty"`
}

// Key is the identifier favorites are deduplicated on.
func (t Track) Key() string {
	if t.SpotifyID != "" {
		return t.SpotifyID
	}
	return t.ID
}

func (t Track) HasIdentifier() bool {
	return t.Key() != ""
}

// Matches reports whether t and other share a non-empty spotify id or a
// non-empty id.
func (t Track) Matches(other Track) bool {
	if t.SpotifyID != "" && t.SpotifyID == other.SpotifyID {
		return true
	}
	return t.ID != "" && t.ID == other.ID
}

// Identified reports whether id refers to t.
func (t Track) Identified(id string) bool {
	return id != "" && (t.ID == id || t.SpotifyID == id)
}
