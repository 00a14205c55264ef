// Package fluentstmt provides a fluent, metadata-driven SQL statement builder.
//
// The core lives in the dialect/sql sub-package: small composable builders
// that assemble SELECT and DELETE statements into SQL text through method
// chaining, with typed column references checked at compile time.
//
// # Packages
//
//   - dialect: database dialect constants and the Driver/Tx execution
//     interfaces consumed by callers
//   - dialect/sql: statement builders, WHERE-clause composition, schema
//     column types, and the database/sql execution adapters
//
// # Quick start
//
//	import (
//	    "github.com/fluentstmt/fluentstmt/dialect"
//	    "github.com/fluentstmt/fluentstmt/dialect/sql"
//	)
//
//	stmt := sql.Dialect(dialect.Postgres).
//	    Select("id", "name").
//	    From("users").
//	    StartWhere().
//	    Cond("status", sql.OpEQ, "'active'").
//	    Cond("age", sql.OpGT, "18", sql.And).
//	    End()
//	fmt.Println(stmt.String()) // SELECT id, name FROM users WHERE status='active' AND age>18;
//
// The builders are deliberately permissive: they never validate the SQL they
// compose. Group parentheses are written literally with no balance tracking,
// and condition values are rendered verbatim with no escaping. Correctness
// enforcement belongs to the compile-time schema types on the way in and to
// the database engine on the way out. The opt-in sql.Validate function offers
// a stricter render-time check as a separate extension.
package fluentstmt
