package bottle

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

	return gormDB, mock, func() { db.Close() }
}

func TestBottleRepo_FindActiveSince(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	since := time.Now().Add(-5 * time.Second)
	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "status", "created_at"}).
		AddRow("bottle-B", "user-2", "hello out there", "active", time.Now())

	mock.ExpectQuery("SELECT .* FROM `dream_bottles` WHERE user_id <> .* AND status = .* AND created_at >= .* ORDER BY created_at DESC").
		WithArgs("user-1", "active", since, 1).
		WillReturnRows(rows)

	repo := NewRepository(db)
	b, err := repo.FindActiveSince(context.Background(), "user-1", since)

	require.NoError(t, err)
	assert.Equal(t, "bottle-B", b.ID)
	assert.Equal(t, common.BottleStatusActive, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBottleRepo_FindActiveSince_Empty(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `dream_bottles`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "status", "created_at"}))

	repo := NewRepository(db)
	_, err := repo.FindActiveSince(context.Background(), "user-1", time.Now())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBottleRepo_UpdateStatus(t *testing.T) {
	t.Run("updates matched pair", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		matched := "bottle-B"

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `dream_bottles` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewRepository(db)
		err := repo.UpdateStatus(context.Background(), "bottle-A", common.BottleStatusMatched, &matched)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing bottle", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `dream_bottles` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewRepository(db)
		err := repo.UpdateStatus(context.Background(), "nope", common.BottleStatusExpired, nil)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
