package bottle

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medlink/internal/common"
	"medlink/internal/dbmysql"
)

type Repository interface {
	Create(ctx context.Context, b *dbmysql.DreamBottle) error
	ByID(ctx context.Context, id string) (*dbmysql.DreamBottle, error)
	ByIDWithOwner(ctx context.Context, id string) (*dbmysql.DreamBottle, error)
	FindActiveSince(ctx context.Context, excludeUserID string, since time.Time) (*dbmysql.DreamBottle, error)
	UpdateStatus(ctx context.Context, id string, status common.BottleStatus, matchedWith *string) error
}

type bottleRepo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &bottleRepo{db: db}
}

func (r *bottleRepo) Create(ctx context.Context, b *dbmysql.DreamBottle) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bottleRepo) ByID(ctx context.Context, id string) (*dbmysql.DreamBottle, error) {
	var b dbmysql.DreamBottle
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bottleRepo) ByIDWithOwner(ctx context.Context, id string) (*dbmysql.DreamBottle, error) {
	var b dbmysql.DreamBottle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindActiveSince returns the newest active bottle of any other user
// created at or after the cutoff, gorm.ErrRecordNotFound when the sea
// is empty.
func (r *bottleRepo) FindActiveSince(ctx context.Context, excludeUserID string, since time.Time) (*dbmysql.DreamBottle, error) {
	var b dbmysql.DreamBottle
	err := r.db.WithContext(ctx).
		Where("user_id <> ? AND status = ? AND created_at >= ?",
			excludeUserID, common.BottleStatusActive, since).
		Order("created_at DESC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateStatus writes status and matched_with unconditionally. The
// caller decides whether the transition is sensible; there is no
// server-side arbitration here.
func (r *bottleRepo) UpdateStatus(ctx context.Context, id string, status common.BottleStatus, matchedWith *string) error {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.DreamBottle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"matched_with": matchedWith,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
