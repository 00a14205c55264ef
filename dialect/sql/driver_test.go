package sql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentstmt/fluentstmt/dialect"
)

func TestOpenDB(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
	}{
		{"Postgres", dialect.Postgres},
		{"MySQL", dialect.MySQL},
		{"SQLite", dialect.SQLite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			drv := OpenDB(tt.dialect, db)
			assert.Equal(t, tt.dialect, drv.Dialect())
			assert.Same(t, db, drv.DB())
		})
	}
	// Instrumented driver names resolve to their base dialect.
	t.Run("SuffixedName", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		drv := OpenDB("mysql-otel", db)
		assert.Equal(t, dialect.MySQL, drv.Dialect())
	})
}

func TestConnExec(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.MySQL, db)

	t.Run("NilDest", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users;")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		require.NoError(t, drv.Exec(context.Background(), "DELETE FROM Users;", []any{}, nil))
	})

	t.Run("ResultDest", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users WHERE ID=?;")).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		var res Result
		require.NoError(t, drv.Exec(context.Background(), "DELETE FROM Users WHERE ID=?;", []any{7}, &res))
		affected, err := res.RowsAffected()
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("InvalidArgs", func(t *testing.T) {
		err := drv.Exec(context.Background(), "DELETE FROM Users;", "not-a-slice", nil)
		assert.ErrorContains(t, err, "expect []any for args")
	})

	t.Run("InvalidDest", func(t *testing.T) {
		err := drv.Exec(context.Background(), "DELETE FROM Users;", []any{}, 42)
		assert.ErrorContains(t, err, "expect *sql.Result")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.MySQL, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, Name FROM Users;")).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "Name"}).
			AddRow(1, "ariel").
			AddRow(2, "noam"))
	var rows Rows
	require.NoError(t, drv.Query(context.Background(), "SELECT ID, Name FROM Users;", []any{}, &rows))
	var names []string
	for rows.Next() {
		var (
			id   int
			name string
		)
		require.NoError(t, rows.Scan(&id, &name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"ariel", "noam"}, names)

	t.Run("InvalidDest", func(t *testing.T) {
		err := drv.Query(context.Background(), "SELECT 1;", []any{}, nil)
		assert.ErrorContains(t, err, "expect *sql.Rows")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

// ExecStmt and QueryStmt carry a finished statement, parameters included,
// to the execution context.
func TestStmtHandoff(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.MySQL, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users WHERE ID=?;")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	del := DeleteFrom[Users]().
		StartWhere().
		CondParam(UserID, OpEQ, 7).
		End()
	require.NoError(t, ExecStmt(context.Background(), drv, del, nil))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID FROM Users WHERE Status=?;")).
		WithArgs("Active").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}).AddRow(1))
	sel := SelectFrom(UserID).
		StartWhere().
		CondParam(UserStatus, OpEQ, "Active").
		End()
	var rows Rows
	require.NoError(t, QueryStmt(context.Background(), drv, sel, &rows))
	require.NoError(t, rows.Close())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Users WHERE ID=$1;")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	del := DeleteFrom[Users]().WithDialect(dialect.Postgres).
		StartWhere().
		CondParam(UserID, OpEQ, 1).
		End()
	require.NoError(t, ExecStmt(context.Background(), tx, del, nil))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNopTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	tx := dialect.NopTx(OpenDB(dialect.SQLite, db))
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}
