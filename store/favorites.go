package store

import (
	"context"
	"errors"

	"github.com/Someshsw1109/soundwave-backend/models"
	"gorm.io/gorm"
)

type FavoriteStore interface {
	CreateTable() error
	Create(ctx context.Context, favorite *models.FavoriteDBModel) error
	ListByUser(ctx context.Context, userID string) ([]models.FavoriteDBModel, error)
	GetByTrack(ctx context.Context, userID, trackID string) (*models.FavoriteDBModel, error)
	DeleteByTrack(ctx context.Context, userID, trackID string) (bool, error)
}

type favoriteStore struct {
	db *gorm.DB
}

func NewFavoriteStore(db *gorm.DB) FavoriteStore {
	return &favoriteStore{
		db: db,
	}
}

func (fs *favoriteStore) table() string {
	return "favorites"
}

func (fs *favoriteStore) CreateTable() error {
	return fs.db.Table(fs.table()).AutoMigrate(models.FavoriteDBModel{})
}

// Create returns gorm.ErrDuplicatedKey when the user already favorited a
// track with the same key.
func (fs *favoriteStore) Create(ctx context.Context, favorite *models.FavoriteDBModel) error {
	return fs.db.WithContext(ctx).Table(fs.table()).Create(favorite).Error
}

func (fs *favoriteStore) ListByUser(ctx context.Context, userID string) ([]models.FavoriteDBModel, error) {
	favorites := []models.FavoriteDBModel{}
	if err := fs.db.WithContext(ctx).Table(fs.table()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}

	return favorites, nil
}

// GetByTrack matches trackID against either the spotify id or the plain id of
// the favorited track.
func (fs *favoriteStore) GetByTrack(ctx context.Context, userID, trackID string) (*models.FavoriteDBModel, error) {
	var favorite models.FavoriteDBModel
	if err := fs.db.WithContext(ctx).Table(fs.table()).
		Where("user_id = ? AND (track_key = ? OR track_id = ?)", userID, trackID, trackID).
		First(&favorite).Error; err != nil {
		return nil, err
	}

	return &favorite, nil
}

func (fs *favoriteStore) DeleteByTrack(ctx context.Context, userID, trackID string) (bool, error) {
	favorite, err := fs.GetByTrack(ctx, userID, trackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	res := fs.db.WithContext(ctx).Table(fs.table()).Where("id = ?", favorite.ID).Delete(&models.FavoriteDBModel{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
