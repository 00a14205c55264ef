package sql

import (
	"strconv"
	"strings"

	"github.com/fluentstmt/fluentstmt/dialect"
)

// Builder is the mutable statement buffer shared by a statement builder and
// its WHERE-clause composer. It is append-only: fluent calls only ever add
// text, and the final render reads the accumulated fragments without
// mutating them. A Builder belongs to exactly one statement builder and must
// not be shared across goroutines.
type Builder struct {
	sb      strings.Builder
	dialect string
	params  []Param
}

// WriteString appends s to the buffer.
func (b *Builder) WriteString(s string) {
	b.sb.WriteString(s)
}

// WriteByte appends c to the buffer.
func (b *Builder) WriteByte(c byte) {
	b.sb.WriteByte(c)
}

// SetDialect sets the dialect used for parameter placeholder formatting.
func (b *Builder) SetDialect(name string) {
	b.dialect = name
}

// Dialect returns the dialect of the builder.
func (b *Builder) Dialect() string {
	return b.dialect
}

// String renders the statement accumulated so far, terminated with ';'.
// Rendering does not mutate the buffer and may be repeated.
func (b *Builder) String() string {
	return b.sb.String() + ";"
}

// Len returns the number of bytes accumulated in the buffer.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// appendParam records a bound parameter and returns the placeholder to
// write in its place: $N for Postgres, ? for every other dialect.
func (b *Builder) appendParam(name string, value any) string {
	b.params = append(b.params, Param{Name: name, Value: value})
	if b.dialect == dialect.Postgres {
		return "$" + strconv.Itoa(len(b.params))
	}
	return "?"
}

// Params returns a copy of the parameters bound so far, in placeholder
// order.
func (b *Builder) Params() []Param {
	if len(b.params) == 0 {
		return nil
	}
	params := make([]Param, len(b.params))
	copy(params, b.params)
	return params
}

// Param is a {name, value} pair handed to the execution adapter alongside
// the rendered statement text. Name is informational; binding is positional.
type Param struct {
	Name  string
	Value any
}

// Values flattens params into the positional argument slice expected by
// database/sql.
func Values(params []Param) []any {
	if len(params) == 0 {
		return []any{}
	}
	args := make([]any, len(params))
	for i := range params {
		args[i] = params[i].Value
	}
	return args
}

// Querier is implemented by every statement builder. Query returns the
// rendered statement text and the parameters bound during composition.
type Querier interface {
	Query() (string, []Param)
}

// DialectBuilder is the entry point for building statements against a
// specific dialect.
type DialectBuilder struct {
	dialect string
}

// Dialect returns a builder entry point for the given dialect name.
func Dialect(name string) *DialectBuilder {
	return &DialectBuilder{dialect: name}
}

// Select starts a SELECT statement with the given columns.
func (d *DialectBuilder) Select(columns ...string) *Selector {
	return Select(columns...).WithDialect(d.dialect)
}

// Delete starts a DELETE statement against the given table.
func (d *DialectBuilder) Delete(table string) *Deleter {
	return DeleteFromTable(table).WithDialect(d.dialect)
}
