package service

import (
	"regexp"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newChatServiceWithMock(t *testing.T) (*ChatService, sqlmock.Sqlmock) {
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

	return NewChatService(repository.NewChatRepository(db), nil, nil, nil), mock
}

func expectMessageLookup(mock sqlmock.Sqlmock, messageID, sessionID string) {
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `chat_messages` WHERE id = ? AND `chat_messages`.`deleted_at` IS NULL ORDER BY `chat_messages`.`id` LIMIT ?")).
		WithArgs(messageID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id"}).AddRow(messageID, sessionID))
}

func expectSessionLookup(mock sqlmock.Sqlmock, sessionID string, ownerID uint) {
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `chat_sessions` WHERE id = ? AND `chat_sessions`.`deleted_at` IS NULL ORDER BY `chat_sessions`.`id` LIMIT ?")).
		WithArgs(sessionID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(sessionID, ownerID))
}

func TestAttachAudioRejectsOtherUsersMessage(t *testing.T) {
	svc, mock := newChatServiceWithMock(t)

	expectMessageLookup(mock, "m1", "s1")
	expectSessionLookup(mock, "s1", 1)

	// 会话属于用户 1，用户 2 不能回填音频；不应发出 UPDATE
	err := svc.AttachAudio(2, "m1", "https://cdn.example.com/a.mp3", 12)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachAudioUnknownMessage(t *testing.T) {
	svc, mock := newChatServiceWithMock(t)

	mock.ExpectQuery("SELECT \\* FROM `chat_messages`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.AttachAudio(1, "missing", "https://cdn.example.com/a.mp3", 12)
	assert.ErrorIs(t, err, util.ErrMessageNotFound)
}

func TestAttachAudioOwnerUpdatesMessage(t *testing.T) {
	svc, mock := newChatServiceWithMock(t)

	expectMessageLookup(mock, "m1", "s1")
	expectSessionLookup(mock, "s1", 1)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `chat_messages` SET `audio_url`=?,`duration`=?,`updated_at`=? WHERE id = ? AND `chat_messages`.`deleted_at` IS NULL")).
		WithArgs("https://cdn.example.com/a.mp3", 12, sqlmock.AnyArg(), "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.AttachAudio(1, "m1", "https://cdn.example.com/a.mp3", 12))
	assert.NoError(t, mock.ExpectationsWereMet())
}
