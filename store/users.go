package store

import (
	"context"
	"errors"
	"strings"

	"github.com/Someshsw1109/soundwave-backend/models"
	"gorm.io/gorm"
)

type UserStore interface {
	CreateTable() error
	Create(ctx context.Context, user *models.UserDBModel) error
	GetOne(ctx context.Context, whereQuery string, whereArgs ...interface{}) (*models.UserDBModel, error)
	Update(ctx context.Context, updateMap map[string]any, whereQuery string, whereArgs ...interface{}) error
	IsExists(ctx context.Context, whereQuery string, whereArgs ...interface{}) (bool, error)
	Summaries(ctx context.Context, ids []string) (map[string]models.UserSummary, error)
	Search(ctx context.Context, query string, limit int) ([]models.UserDBModel, error)
}

type userStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{
		db: db,
	}
}

func (us *userStore) table() string {
	return "users"
}

func (us *userStore) CreateTable() error {
	return us.db.Table(us.table()).AutoMigrate(models.UserDBModel{})
}

func (us *userStore) Create(ctx context.Context, user *models.UserDBModel) error {
	return us.db.WithContext(ctx).Table(us.table()).Create(user).Error
}

func (us *userStore) GetOne(ctx context.Context, whereQuery string, whereArgs ...interface{}) (*models.UserDBModel, error) {
	var user models.UserDBModel
	if err := us.db.WithContext(ctx).Table(us.table()).Where(whereQuery, whereArgs...).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Update returns gorm.ErrRecordNotFound when nothing matched.
func (us *userStore) Update(ctx context.Context, updateMap map[string]any, whereQuery string, whereArgs ...interface{}) error {
	res := us.db.WithContext(ctx).Table(us.table()).Where(whereQuery, whereArgs...).Updates(updateMap)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (us *userStore) IsExists(ctx context.Context, whereQuery string, whereArgs ...interface{}) (bool, error) {
	var count int64

	if err := us.db.WithContext(ctx).Table(us.table()).Where(whereQuery, whereArgs...).Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return count > 0, nil
}

// Summaries loads the populated form of every id in ids. Unknown ids are
// missing from the result.
func (us *userStore) Summaries(ctx context.Context, ids []string) (map[string]models.UserSummary, error) {
	res := make(map[string]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	var users []models.UserDBModel
	if err := us.db.WithContext(ctx).Table(us.table()).
		Select("id", "name", "avatar").
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}

	for _, u := range users {
		res[u.ID] = models.NewUserSummary(u)
	}

	return res, nil
}

func (us *userStore) Search(ctx context.Context, query string, limit int) ([]models.UserDBModel, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	var users []models.UserDBModel
	if err := us.db.WithContext(ctx).Table(us.table()).
		Where("is_public = ?", true).
		Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\')`, pattern, pattern).
		Order("created_at ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
