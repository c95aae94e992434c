package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"medlink/internal/common"
	"medlink/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestChatRepository_SaveMessage(t *testing.T) {
	tests := []struct {
		name        string
		message     *dbmysql.ChatMessage
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name: "successful save",
			message: &dbmysql.ChatMessage{
				ID:          "msg-1",
				RoomID:      "room-123",
				SenderID:    "user-456",
				Content:     "SGVsbG8sIHdvcmxkIQ==",
				Type:        common.MessageTypeText,
				IsEncrypted: true,
				CreatedAt:   time.Now().UTC(),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `chat_messages`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectError: false,
		},
		{
			name: "database error",
			message: &dbmysql.ChatMessage{
				ID:       "msg-1",
				RoomID:   "room-123",
				SenderID: "user-456",
				Content:  "SGVsbG8=",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `chat_messages`").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewChatRepository(db)
			err := repo.SaveMessage(context.Background(), tt.message)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_CreateRoom_TransactionRollsBackOnParticipantFailure(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `chat_rooms`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `chat_participants`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewChatRepository(db)
	room := &dbmysql.ChatRoom{ID: "room-1", Type: common.RoomTypeDirect, CreatedBy: "u1"}
	participants := []*dbmysql.ChatParticipant{
		{RoomID: "room-1", UserID: "u1", Role: common.RoleMember},
		{RoomID: "room-1", UserID: "u2", Role: common.RoleMember},
	}

	err := repo.CreateRoom(context.Background(), room, participants)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_FindDirectRoom(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "type", "name", "created_by"}).
			AddRow("room-1", "direct", nil, "u1")

		mock.ExpectQuery("SELECT .* FROM `chat_rooms` JOIN chat_participants p1 .* JOIN chat_participants p2 .*").
			WithArgs("u1", "u2", "direct", 1).
			WillReturnRows(rows)

		repo := NewChatRepository(db)
		room, err := repo.FindDirectRoom(context.Background(), "u1", "u2")

		require.NoError(t, err)
		assert.Equal(t, "room-1", room.ID)
		assert.Equal(t, common.RoomTypeDirect, room.Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .* FROM `chat_rooms`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "type", "name", "created_by"}))

		repo := NewChatRepository(db)
		room, err := repo.FindDirectRoom(context.Background(), "u1", "u2")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, room)
	})
}

func TestChatRepository_ResetUnread_AlwaysZero(t *testing.T) {
	// prior value does not matter: 0, 5 or huge, the statement always
	// writes an absolute 0
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `chat_participants` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewChatRepository(db)
	err := repo.ResetUnread(context.Background(), "room-1", "u1", time.Now().UTC())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_IncrementUnread_SkipsSender(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `chat_participants` SET `unread_count`=unread_count \\+ 1").
		WithArgs("room-1", "sender").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	repo := NewChatRepository(db)
	err := repo.IncrementUnread(context.Background(), "room-1", "sender")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_FetchHistory_Ordering(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	baseTime := time.Now().Add(-1 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "room_id", "sender_id", "content", "type", "is_encrypted", "created_at"}).
		AddRow("m1", "room-1", "u1", "Rmlyc3Q=", "text", true, baseTime).
		AddRow("m2", "room-1", "u2", "U2Vjb25k", "text", true, baseTime.Add(10*time.Minute))

	mock.ExpectQuery("SELECT .* FROM `chat_messages` WHERE room_id = .* ORDER BY created_at ASC").
		WithArgs("room-1", 50).
		WillReturnRows(rows)

	repo := NewChatRepository(db)
	messages, err := repo.FetchHistory(context.Background(), "room-1", 50, 0)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_IsParticipant(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `chat_participants`").
		WithArgs("room-1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := NewChatRepository(db)
	ok, err := repo.IsParticipant(context.Background(), "room-1", "u1")

	require.NoError(t, err)
	assert.True(t, ok)
}
