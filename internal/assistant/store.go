package assistant

import (
	"context"

	"gorm.io/gorm"

	"medlink/internal/dbmysql"
)

// ConversationStore persists assistant conversation logs. Persistence is
// decoupled from the gateway so callers can swap storage without touching
// the provider boundary.
type ConversationStore interface {
	Load(ctx context.Context, key string) ([]Turn, error)
	Save(ctx context.Context, key string, turns []Turn) error
}

type gormConversationStore struct {
	db *gorm.DB
}

func NewConversationStore(db *gorm.DB) ConversationStore {
	return &gormConversationStore{db: db}
}

func (s *gormConversationStore) Load(ctx context.Context, key string) ([]Turn, error) {
	var rows []dbmysql.ConversationTurn
	err := s.db.WithContext(ctx).
		Where("conv_key = ?", key).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	turns := make([]Turn, 0, len(rows))
	for _, r := range rows {
		turns = append(turns, Turn{Role: r.Role, Content: r.Content})
	}
	return turns, nil
}

// Save replaces the stored log for key with turns. The full-log rewrite
// matches how the conversation is held by callers, as one ordered slice.
func (s *gormConversationStore) Save(ctx context.Context, key string, turns []Turn) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conv_key = ?", key).
			Delete(&dbmysql.ConversationTurn{}).Error; err != nil {
			return err
		}
		if len(turns) == 0 {
			return nil
		}
		rows := make([]dbmysql.ConversationTurn, 0, len(turns))
		for _, t := range turns {
			rows = append(rows, dbmysql.ConversationTurn{
				ConvKey: key,
				Role:    t.Role,
				Content: t.Content,
			})
		}
		return tx.Create(&rows).Error
	})
}
