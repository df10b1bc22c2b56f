package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "xp", "target_role"}).
		AddRow(1, "Alice", "alice@example.com", 230, "Data Scientist")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` WHERE email = ? AND `users`.`deleted_at` IS NULL ORDER BY `users`.`id` LIMIT ?")).
		WithArgs("alice@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Data Scientist", user.TargetRole)
	assert.Equal(t, 230, user.XP)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryAddXP(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `users` SET `xp`=xp + ? WHERE id = ? AND `users`.`deleted_at` IS NULL")).
		WithArgs(20, uint(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AddXP(1, 20))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindTopByXP(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "xp"}).
		AddRow(2, "Bob", 500).
		AddRow(1, "Alice", 230)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` WHERE disabled = ? AND `users`.`deleted_at` IS NULL ORDER BY xp DESC LIMIT ?")).
		WithArgs(false, 2).
		WillReturnRows(rows)

	users, err := repo.FindTopByXP(2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[0].Name)
	assert.GreaterOrEqual(t, users[0].XP, users[1].XP)
}
