package store

import (
	"context"
	"time"

	"github.com/Someshsw1109/soundwave-backend/models"
	"gorm.io/gorm"
)

type PlaylistStore interface {
	CreateTable() error
	Create(ctx context.Context, playlist *models.PlaylistDBModel) error
	GetOne(ctx context.Context, whereQuery string, whereArgs ...interface{}) (*models.PlaylistDBModel, error)
	ListForMember(ctx context.Context, userID string) ([]models.PlaylistDBModel, error)
	ListPublicByOwners(ctx context.Context, ownerIDs []string, limit int) ([]models.PlaylistDBModel, error)
	Update(ctx context.Context, updateMap map[string]any, whereQuery string, whereArgs ...interface{}) error
	Delete(ctx context.Context, playlistID string) error

	AddMember(ctx context.Context, playlistID, userID, role string) error
	RemoveMember(ctx context.Context, playlistID, userID, role string) error
	IsMember(ctx context.Context, playlistID, userID, role string) (bool, error)
	MemberIDs(ctx context.Context, playlistIDs []string, role string) (map[string][]string, error)
}

type playlistStore struct {
	db *gorm.DB
}

func NewPlaylistStore(db *gorm.DB) PlaylistStore {
	return &playlistStore{
		db: db,
	}
}

func (ps *playlistStore) table() string {
	return "playlists"
}

func (ps *playlistStore) membersTable() string {
	return "playlist_members"
}

func (ps *playlistStore) CreateTable() error {
	if err := ps.db.Table(ps.table()).AutoMigrate(models.PlaylistDBModel{}); err != nil {
		return err
	}

	return ps.db.Table(ps.membersTable()).AutoMigrate(models.PlaylistMemberDBModel{})
}

func (ps *playlistStore) Create(ctx context.Context, playlist *models.PlaylistDBModel) error {
	return ps.db.WithContext(ctx).Table(ps.table()).Create(playlist).Error
}

func (ps *playlistStore) GetOne(ctx context.Context, whereQuery string, whereArgs ...interface{}) (*models.PlaylistDBModel, error) {
	var playlist models.PlaylistDBModel
	if err := ps.db.WithContext(ctx).Table(ps.table()).Where(whereQuery, whereArgs...).First(&playlist).Error; err != nil {
		return nil, err
	}

	return &playlist, nil
}

// ListForMember returns the playlists userID owns or collaborates on.
func (ps *playlistStore) ListForMember(ctx context.Context, userID string) ([]models.PlaylistDBModel, error) {
	db := ps.db.WithContext(ctx)

	collaborating := db.Table(ps.membersTable()).
		Select("playlist_id").
		Where("user_id = ? AND role = ?", userID, models.RoleCollaborator)

	playlists := []models.PlaylistDBModel{}
	if err := db.Table(ps.table()).
		Where("owner_id = ? OR id IN (?)", userID, collaborating).
		Order("created_at ASC").
		Find(&playlists).Error; err != nil {
		return nil, err
	}

	return playlists, nil
}

func (ps *playlistStore) ListPublicByOwners(ctx context.Context, ownerIDs []string, limit int) ([]models.PlaylistDBModel, error) {
	playlists := []models.PlaylistDBModel{}
	if len(ownerIDs) == 0 {
		return playlists, nil
	}

	if err := ps.db.WithContext(ctx).Table(ps.table()).
		Where("owner_id IN ? AND is_public = ?", ownerIDs, true).
		Order("created_at ASC").
		Limit(limit).
		Find(&playlists).Error; err != nil {
		return nil, err
	}

	return playlists, nil
}

func (ps *playlistStore) Update(ctx context.Context, updateMap map[string]any, whereQuery string, whereArgs ...interface{}) error {
	res := ps.db.WithContext(ctx).Table(ps.table()).Where(whereQuery, whereArgs...).Updates(updateMap)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete drops the playlist together with its collaborator and follower rows.
func (ps *playlistStore) Delete(ctx context.Context, playlistID string) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(ps.membersTable()).Where("playlist_id = ?", playlistID).Delete(&models.PlaylistMemberDBModel{}).Error; err != nil {
			return err
		}

		res := tx.Table(ps.table()).Where("id = ?", playlistID).Delete(&models.PlaylistDBModel{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// AddMember returns gorm.ErrDuplicatedKey if userID already holds role.
func (ps *playlistStore) AddMember(ctx context.Context, playlistID, userID, role string) error {
	return ps.db.WithContext(ctx).Table(ps.membersTable()).Create(&models.PlaylistMemberDBModel{
		PlaylistID: playlistID,
		UserID:     userID,
		Role:       role,
		CreatedAt:  time.Now(),
	}).Error
}

func (ps *playlistStore) RemoveMember(ctx context.Context, playlistID, userID, role string) error {
	return ps.db.WithContext(ctx).Table(ps.membersTable()).
		Where("playlist_id = ? AND user_id = ? AND role = ?", playlistID, userID, role).
		Delete(&models.PlaylistMemberDBModel{}).Error
}

func (ps *playlistStore) IsMember(ctx context.Context, playlistID, userID, role string) (bool, error) {
	var count int64
	if err := ps.db.WithContext(ctx).Table(ps.membersTable()).
		Where("playlist_id = ? AND user_id = ? AND role = ?", playlistID, userID, role).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// MemberIDs maps every playlist id to the user ids holding role on it, in the
// order they were added.
func (ps *playlistStore) MemberIDs(ctx context.Context, playlistIDs []string, role string) (map[string][]string, error) {
	res := make(map[string][]string, len(playlistIDs))
	for _, id := range playlistIDs {
		res[id] = []string{}
	}

	if len(playlistIDs) == 0 {
		return res, nil
	}

	var members []models.PlaylistMemberDBModel
	if err := ps.db.WithContext(ctx).Table(ps.membersTable()).
		Where("playlist_id IN ? AND role = ?", playlistIDs, role).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	for _, m := range members {
		res[m.PlaylistID] = append(res[m.PlaylistID], m.UserID)
	}

	return res, nil
}
