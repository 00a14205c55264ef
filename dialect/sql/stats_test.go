package sql

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentstmt/fluentstmt/dialect"
)

func TestStatsDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := NewStatsDriver(OpenDB(dialect.MySQL, db))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID FROM Users;")).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users;")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	var rows Rows
	require.NoError(t, QueryStmt(context.Background(), drv, SelectFrom(UserID), &rows))
	require.NoError(t, rows.Close())
	require.NoError(t, ExecStmt(context.Background(), drv, DeleteFrom[Users](), nil))

	s := drv.QueryStats().Stats()
	assert.Equal(t, int64(1), s.TotalQueries)
	assert.Equal(t, int64(1), s.TotalExecs)
	assert.Equal(t, int64(0), s.Errors)
	assert.GreaterOrEqual(t, s.TotalDuration, time.Duration(0))
	assert.Contains(t, s.String(), "queries=1 execs=1")

	drv.QueryStats().Reset()
	assert.Equal(t, int64(0), drv.QueryStats().Stats().TotalQueries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsDriverSlowHook(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	var slow []string
	drv := NewStatsDriver(OpenDB(dialect.MySQL, db),
		WithSlowThreshold(0),
		WithSlowQueryHook(func(_ context.Context, query string, _ time.Duration) {
			slow = append(slow, query)
		}),
	)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users;")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, ExecStmt(context.Background(), drv, DeleteFrom[Users](), nil))

	require.Len(t, slow, 1)
	assert.Equal(t, "DELETE FROM Users;", slow[0])
	assert.Equal(t, int64(1), drv.QueryStats().Stats().SlowQueries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsDriverCountsErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := NewStatsDriver(OpenDB(dialect.MySQL, db))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Missing;")).
		WillReturnError(assert.AnError)
	require.Error(t, ExecStmt(context.Background(), drv, DeleteFromTable("Missing"), nil))
	assert.Equal(t, int64(1), drv.QueryStats().Stats().Errors)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := NewStatsDriver(OpenDB(dialect.MySQL, db))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users;")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, ExecStmt(context.Background(), tx, DeleteFrom[Users](), nil))
	require.NoError(t, tx.Commit())
	assert.Equal(t, int64(1), drv.QueryStats().Stats().TotalExecs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDebugDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	var logged []string
	drv := NewDebugDriver(OpenDB(dialect.MySQL, db),
		DebugWithLog(func(_ context.Context, v ...any) {
			var sb strings.Builder
			for _, s := range v {
				sb.WriteString(s.(string))
			}
			logged = append(logged, sb.String())
		}),
	)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users;")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, ExecStmt(context.Background(), drv, DeleteFrom[Users](), nil))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID FROM Users;")).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))
	mock.ExpectRollback()
	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	var rows Rows
	require.NoError(t, QueryStmt(context.Background(), tx, SelectFrom(UserID), &rows))
	require.NoError(t, rows.Close())
	require.NoError(t, tx.Rollback())

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, logged[0], "exec: DELETE FROM Users;")
	assert.Contains(t, logged, "begin transaction")
	assert.Contains(t, logged, "rollback transaction")
}
