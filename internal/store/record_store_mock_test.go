package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/joestump/worklog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRecordStore(t *testing.T) (*store.RecordStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewRecordStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRecordStore_List_BuildsFilteredQueries(t *testing.T) {
	rs, mock := newMockRecordStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records WHERE content LIKE \? AND tags LIKE \?`).
		WithArgs("%parser%", "%wo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT id, content, tags, created_at FROM records WHERE content LIKE \? AND tags LIKE \? ORDER BY id ASC LIMIT 5 OFFSET 10`).
		WithArgs("%parser%", "%wo%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "tags", "created_at"}).
			AddRow(11, "wrote the parser", "work", time.Unix(1700000000, 0)))

	records, count, err := rs.List(context.Background(), store.ListParams{
		Keyword: "parser",
		Tags:    "wo",
		Limit:   5,
		Offset:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	require.Len(t, records, 1)
	assert.Equal(t, int64(11), records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_List_DefaultLimit(t *testing.T) {
	rs, mock := newMockRecordStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY id ASC LIMIT 20 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "tags", "created_at"}))

	records, count, err := rs.List(context.Background(), store.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_List_CountError(t *testing.T) {
	rs, mock := newMockRecordStore(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(boom)

	_, _, err := rs.List(context.Background(), store.ListParams{})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_Create_UsesLastInsertID(t *testing.T) {
	rs, mock := newMockRecordStore(t)

	mock.ExpectExec(`INSERT INTO records \(content,tags,created_at\) VALUES \(\?,\?,\?\)`).
		WithArgs("abc", "x|y", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	r, err := rs.Create(context.Background(), "abc", []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), r.ID)
	assert.Equal(t, "x|y", r.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_Update_NotFoundRollsBack(t *testing.T) {
	rs, mock := newMockRecordStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, content, tags, created_at FROM records WHERE id = \?`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	content := "new"
	_, err := rs.Update(context.Background(), 9, store.RecordUpdate{Content: &content})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_Update_WritesOnlyGivenFields(t *testing.T) {
	rs, mock := newMockRecordStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, content, tags, created_at FROM records WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "tags", "created_at"}).
			AddRow(3, "old", "a", time.Unix(1700000000, 0)))
	mock.ExpectExec(`UPDATE records SET tags = \? WHERE id = \?`).
		WithArgs("b|c", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tags := []string{"b", "c"}
	r, err := rs.Update(context.Background(), 3, store.RecordUpdate{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "old", r.Content)
	assert.Equal(t, "b|c", r.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_Delete_Error(t *testing.T) {
	rs, mock := newMockRecordStore(t)
	boom := errors.New("disk full")

	mock.ExpectExec(`DELETE FROM records WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnError(boom)

	err := rs.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
