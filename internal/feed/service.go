package feed

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/dbmongo"
	"medlink/internal/dbmysql"
	"medlink/pkg/errors"
)

const defaultTimelineLimit = 20

type FeedService interface {
	CreatePost(ctx context.Context, authorID, body string, media []byte, filename, mimeType string) (*dbmysql.Post, error)
	Timeline(ctx context.Context, limit, offset int) ([]dbmysql.Post, error)
	DeletePost(ctx context.Context, authorID, postID string) error
}

type feedService struct {
	posts  PostRepository
	blobs  dbmongo.BlobStore
	logger *zap.Logger
}

func NewFeedService(posts PostRepository, blobs dbmongo.BlobStore, logger *zap.Logger) FeedService {
	return &feedService{posts: posts, blobs: blobs, logger: logger}
}

func (s *feedService) CreatePost(ctx context.Context, authorID, body string, media []byte, filename, mimeType string) (*dbmysql.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" && len(media) == 0 {
		return nil, errors.InvalidArg("post needs a body or an attachment")
	}

	post := &dbmysql.Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Body:     body,
	}

	if len(media) > 0 {
		if filename == "" {
			return nil, errors.InvalidArg("attachment filename required")
		}
		key := fmt.Sprintf("posts/%s/%s", post.ID, filename)
		stored, err := s.blobs.Upload(ctx, key, filename, mimeType, authorID, bytes.NewReader(media))
		if err != nil {
			return nil, errors.Wrap(errors.CodeInternal, "failed to upload post media", err)
		}
		url := s.blobs.PublicURL(stored.ID)
		post.MediaID = &stored.ID
		post.MediaURL = &url
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to create post", err)
	}

	s.logger.Info("post created",
		zap.String("post_id", post.ID), zap.String("author_id", authorID))
	return post, nil
}

func (s *feedService) Timeline(ctx context.Context, limit, offset int) ([]dbmysql.Post, error) {
	if limit <= 0 {
		limit = defaultTimelineLimit
	}
	if offset < 0 {
		offset = 0
	}
	posts, err := s.posts.Timeline(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to load timeline", err)
	}
	return posts, nil
}

func (s *feedService) DeletePost(ctx context.Context, authorID, postID string) error {
	post, err := s.posts.ByID(ctx, postID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NotFound("post not found")
		}
		return errors.Wrap(errors.CodeInternal, "failed to load post", err)
	}
	if post.AuthorID != authorID {
		return errors.Forbidden("only the author can delete a post")
	}

	if post.MediaID != nil {
		// Post removal wins even when the blob refuses to go.
		if err := s.blobs.Delete(ctx, *post.MediaID); err != nil {
			s.logger.Warn("failed to delete post media",
				zap.String("post_id", postID), zap.Error(err))
		}
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to delete post", err)
	}
	return nil
}
