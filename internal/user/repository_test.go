package user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func TestUserRepo_GetUserByHandle(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "handle", "email", "status"}).
		AddRow("user-1", "dr_ayesha", "ayesha@hospital.org", "active")

	mock.ExpectQuery("SELECT .* FROM `users` WHERE \\(handle = .* AND status = .*\\) AND `users`.`deleted_at` IS NULL").
		WithArgs("dr_ayesha", "active", 1).
		WillReturnRows(rows)

	repo := NewUserRepository(db)
	u, err := repo.GetUserByHandle(context.Background(), "dr_ayesha")

	require.NoError(t, err)
	assert.Equal(t, "user-1", u.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUserByHandle_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "handle"}))

	repo := NewUserRepository(db)
	_, err := repo.GetUserByHandle(context.Background(), "ghost")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepo_CheckUserExists(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE handle = .*").
		WithArgs("dr_ayesha").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := NewUserRepository(db)
	exists, err := repo.CheckUserExists(context.Background(), "dr_ayesha")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepo_MarkVerified(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewUserRepository(db)
	err := repo.MarkVerified(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_MarkVerified_Unknown(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewUserRepository(db)
	err := repo.MarkVerified(context.Background(), "ghost")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
