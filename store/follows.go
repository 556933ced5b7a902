package store

import (
	"context"
	"time"

	"github.com/Someshsw1109/soundwave-backend/models"
	"gorm.io/gorm"
)

// FollowStore keeps the social graph. Each edge is a single row, so both
// users' views of it change together.
type FollowStore interface {
	CreateTable() error
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	FollowerIDsOf(ctx context.Context, userIDs []string) (map[string][]string, error)
	Followers(ctx context.Context, userID string) ([]models.UserDBModel, error)
	Following(ctx context.Context, userID string) ([]models.UserDBModel, error)
}

type followStore struct {
	db *gorm.DB
}

func NewFollowStore(db *gorm.DB) FollowStore {
	return &followStore{
		db: db,
	}
}

func (fs *followStore) table() string {
	return "follows"
}

func (fs *followStore) CreateTable() error {
	return fs.db.Table(fs.table()).AutoMigrate(models.FollowDBModel{})
}

// Follow returns gorm.ErrDuplicatedKey when the edge already exists.
func (fs *followStore) Follow(ctx context.Context, followerID, followeeID string) error {
	return fs.db.WithContext(ctx).Table(fs.table()).Create(&models.FollowDBModel{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}).Error
}

func (fs *followStore) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return fs.db.WithContext(ctx).Table(fs.table()).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.FollowDBModel{}).Error
}

func (fs *followStore) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := fs.db.WithContext(ctx).Table(fs.table()).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (fs *followStore) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := fs.db.WithContext(ctx).Table(fs.table()).
		Where("follower_id = ?", userID).
		Order("created_at ASC").
		Pluck("followee_id", &ids).Error

	return ids, err
}

// FollowerIDsOf maps every user id to the ids of its followers.
func (fs *followStore) FollowerIDsOf(ctx context.Context, userIDs []string) (map[string][]string, error) {
	res := make(map[string][]string, len(userIDs))
	for _, id := range userIDs {
		res[id] = []string{}
	}

	if len(userIDs) == 0 {
		return res, nil
	}

	var edges []models.FollowDBModel
	if err := fs.db.WithContext(ctx).Table(fs.table()).
		Where("followee_id IN ?", userIDs).
		Order("created_at ASC").
		Find(&edges).Error; err != nil {
		return nil, err
	}

	for _, e := range edges {
		res[e.FolloweeID] = append(res[e.FolloweeID], e.FollowerID)
	}

	return res, nil
}

func (fs *followStore) Followers(ctx context.Context, userID string) ([]models.UserDBModel, error) {
	return fs.users(ctx, "follows.follower_id", "follows.followee_id", userID)
}

func (fs *followStore) Following(ctx context.Context, userID string) ([]models.UserDBModel, error) {
	return fs.users(ctx, "follows.followee_id", "follows.follower_id", userID)
}

// users loads the id, name, avatar and bio of the users on one side of the
// edges touching userID, oldest edge first.
func (fs *followStore) users(ctx context.Context, joinColumn, whereColumn, userID string) ([]models.UserDBModel, error) {
	users := []models.UserDBModel{}
	if err := fs.db.WithContext(ctx).Table("users").
		Select("users.id", "users.name", "users.avatar", "users.bio").
		Joins("JOIN follows ON users.id = "+joinColumn).
		Where(whereColumn+" = ?", userID).
		Order("follows.created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
