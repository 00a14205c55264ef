// Package dialect provides database dialect abstraction for the statement
// builders.
//
// This package defines the interfaces and constants used for
// database-specific execution, allowing the same built statement to be
// handed to PostgreSQL, MySQL, or SQLite connections.
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// The dialect name only affects parameter placeholder formatting in the
// builders ($N for Postgres, ? elsewhere); statement keywords are shared.
//
// # Driver Interface
//
// The package defines the Driver interface for database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends ExecQuerier with Commit and Rollback. Both Driver
// and Tx implement ExecQuerier, so code that only executes statements can
// accept either.
//
// # Usage
//
//	import (
//	    "github.com/fluentstmt/fluentstmt/dialect"
//	    "github.com/fluentstmt/fluentstmt/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.SQLite, "file:app.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// The dialect/sql sub-package contains the statement builders and the
// database/sql-backed implementation of these interfaces.
package dialect
