package dialect

import "context"

// Supported dialect names. The name doubles as the database/sql driver name
// passed to sql.Open.
const (
	// MySQL is the mysql dialect.
	MySQL = "mysql"
	// SQLite is the sqlite dialect.
	SQLite = "sqlite"
	// Postgres is the postgres dialect.
	Postgres = "postgres"
)

// ExecQuerier wraps the two standard database operations.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows. Its args slice
	// carries the bound parameter values, and v may hold a *sql.Result
	// destination or be nil.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement that returns rows, scanning them into v.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface the execution adapters implement on top of an
// externally managed connection. The driver does not build statements; it
// only binds finished statement text and parameters to the connection.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transaction operations together with the standard database
// operations scoped to that transaction.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

type nopTx struct {
	Driver
}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

// NopTx returns a Tx with a no-op Commit and Rollback on top of the given
// driver. Useful for drivers that run in auto-commit mode.
func NopTx(d Driver) Tx { return nopTx{d} }
