package user

import (
	"context"

	"gorm.io/gorm"

	"medlink/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*dbmysql.User, error)
	GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	CheckUserExists(ctx context.Context, handle string) (bool, error)
	MarkVerified(ctx context.Context, userID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ? AND status = ?", userID, "active").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByHandle(ctx context.Context, handle string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("handle = ? AND status = ?", handle, "active").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("email = ? AND status = ?", email, "active").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CheckUserExists(ctx context.Context, handle string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("handle = ?", handle).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) MarkVerified(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Model(&dbmysql.User{}).
		Where("user_id = ?", userID).
		Update("verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
