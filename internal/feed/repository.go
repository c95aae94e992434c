package feed

import (
	"context"

	"gorm.io/gorm"

	"medlink/internal/dbmysql"
)

type PostRepository interface {
	Create(ctx context.Context, post *dbmysql.Post) error
	ByID(ctx context.Context, id string) (*dbmysql.Post, error)
	Timeline(ctx context.Context, limit, offset int) ([]dbmysql.Post, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ByID(ctx context.Context, id string) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Timeline(ctx context.Context, limit, offset int) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Post{}, "id = ?", id).Error
}
