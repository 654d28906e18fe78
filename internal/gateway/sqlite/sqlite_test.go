package sqlite

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/sciseed/internal/domain"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "./uni.db?cache=shared&_journal_mode=WAL&_foreign_keys=on", Path("sqlite://./uni.db"))
	assert.Equal(t, "uni.db?mode=memory", Path("uni.db?mode=memory"))
}

func TestTruncateResetsSequence(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "phd"`)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sqlite_sequence")).WithArgs("phd").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "scientist"`)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sqlite_sequence")).WithArgs("scientist").WillReturnResult(sqlmock.NewResult(0, 0))

	g := NewWithDB(db, 10)
	require.NoError(t, g.Truncate(context.Background(), []domain.Table{domain.TablePHD, domain.TableScientist}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scientist_works_at_faculty (faculty_id,scientist_id) VALUES (?,?),(?,?)")).
		WithArgs(1, 1, 1, 2).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	ctx := context.Background()
	g := NewWithDB(db, 10)
	records := domain.Records([]domain.ScientistFaculty{
		{FacultyID: 1, ScientistID: 1},
		{FacultyID: 1, ScientistID: 2},
	})

	require.NoError(t, g.Begin(ctx))
	require.NoError(t, g.BulkInsert(ctx, domain.TableScientistFaculty, records))
	require.NoError(t, g.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
