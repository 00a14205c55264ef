// Package sql provides fluent SQL statement builders and the database/sql
// execution adapters that carry their output to a connection.
//
// # Builder Types
//
// The package provides specialized builders for the supported statements:
//
//   - Selector: SELECT builder over free-text table and column names
//   - SelectOf[S]: SELECT builder typed on a schema tag
//   - SelectJoin[S, J]: two-table SELECT with a typed join condition
//   - Deleter: DELETE builder for an explicitly named table
//   - DeleteOf[S]: DELETE builder typed on a schema tag
//
// Each builder owns an append-only statement buffer seeded with the leading
// keyword at construction. Fluent calls append fragments; String renders
// the accumulated text terminated with ';' and may be called repeatedly.
//
// # WHERE Composition
//
// StartWhere opens the WHERE clause and hands back a composer bound to the
// owning builder. The first condition is never preceded by a connector;
// each following condition takes exactly one:
//
//	sql.Select("id").From("users").
//	    StartWhere().
//	    Cond("status", sql.OpEQ, "'active'").
//	    Cond("age", sql.OpGT, "18", sql.And).
//	    End().
//	    String()
//	// SELECT id FROM users WHERE status='active' AND age>18;
//
// OpenGroup and CloseGroup write literal parentheses with no balance
// tracking, and condition values are rendered verbatim with no escaping.
// Composition failures surface at the database engine, not here; the
// opt-in Validate function catches unbalanced groups and dangling
// connectors before execution.
//
// # Typed Schema References
//
// A schema tag binds a Go type to a table and a closed column set, moving
// identifier checks to compile time:
//
//	type Users struct{}
//
//	func (Users) TableName() string { return "Users" }
//
//	const UserAge = sql.Column[Users]("Age")
//
//	sql.SelectFrom[Users]().StartWhere().Cond(UserAge, sql.OpGT, "18").End()
//
// # Parameters
//
// CondParam binds the condition value as a parameter instead of writing it
// into the text, emitting $N placeholders for Postgres and ? elsewhere.
// Query returns the rendered text together with the ordered Param list for
// the execution adapter.
//
// # Execution
//
// Open and OpenDB wrap database/sql connections in a dialect.Driver.
// ExecStmt and QueryStmt hand a finished statement to any
// dialect.ExecQuerier:
//
//	drv, _ := sql.Open(dialect.SQLite, "file:app.db")
//	var rows sql.Rows
//	err := sql.QueryStmt(ctx, drv, stmt, &rows)
//
// NewStatsDriver and NewDebugDriver decorate a driver with execution
// statistics and statement logging.
package sql
