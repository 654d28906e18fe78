package common

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
)

func newSession(t *testing.T, batch int) (*SQLSession, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLSession(db, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), batch, "test"), mock
}

func TestSQLSessionCommit(t *testing.T) {
	ctx := context.Background()
	s, mock := newSession(t, 2)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO faculty").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO faculty").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Begin(ctx))
	require.NoError(t, s.BulkInsert(ctx, domain.TableFaculty, faculties(3)))
	require.NoError(t, s.Commit(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSessionRollbackOnInsertError(t *testing.T) {
	ctx := context.Background()
	s, mock := newSession(t, 10)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO faculty").WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	require.NoError(t, s.Begin(ctx))
	err := s.BulkInsert(ctx, domain.TableFaculty, faculties(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert into faculty")
	require.NoError(t, s.Rollback(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSessionDoubleBegin(t *testing.T) {
	ctx := context.Background()
	s, mock := newSession(t, 10)
	mock.ExpectBegin()

	require.NoError(t, s.Begin(ctx))
	assert.Error(t, s.Begin(ctx))
}

func TestSQLSessionCommitWithoutBegin(t *testing.T) {
	s, _ := newSession(t, 10)
	assert.Error(t, s.Commit(context.Background()))
	assert.NoError(t, s.Rollback(context.Background()))
}

func TestSQLSessionInsertWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	s, mock := newSession(t, 10)
	mock.ExpectExec("INSERT INTO faculty").
		WithArgs(1, "Physics", domain.University).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.BulkInsert(ctx, domain.TableFaculty, faculties(1)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
