package verify

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medlink/internal/dbmysql"
)

type VerificationRepository interface {
	Create(ctx context.Context, rec *dbmysql.EmailVerification) error
	LatestActive(ctx context.Context, email string, now time.Time) (*dbmysql.EmailVerification, error)
	MarkConsumed(ctx context.Context, id uint, at time.Time) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, rec *dbmysql.EmailVerification) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// LatestActive returns the newest unconsumed, unexpired code row for the
// address. gorm.ErrRecordNotFound when there is none.
func (r *verificationRepository) LatestActive(ctx context.Context, email string, now time.Time) (*dbmysql.EmailVerification, error) {
	var rec dbmysql.EmailVerification
	err := r.db.WithContext(ctx).
		Where("email = ? AND consumed_at IS NULL AND expires_at > ?", email, now).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *verificationRepository) MarkConsumed(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&dbmysql.EmailVerification{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
