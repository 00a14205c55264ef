package sql

// clause tracks WHERE-clause composition state for one statement buffer.
// The hasCond flag suppresses the connector in front of the first condition;
// every later condition is preceded by exactly one connector token supplied
// by the caller. The flag is set on first use and never cleared.
type clause struct {
	b       *Builder
	hasCond bool
}

// begin writes the WHERE keyword, optionally opening a group. Called once
// per clause instance, at construction.
func (c *clause) begin(grouped bool) {
	c.b.WriteString(" WHERE ")
	if grouped {
		c.b.WriteByte('(')
	}
}

// raw appends a pre-formatted condition fragment. The connector is ignored
// for the first condition in the clause.
func (c *clause) raw(condition string, conn Connector) {
	if c.hasCond {
		c.b.WriteString(" " + conn.String() + " ")
	}
	c.b.WriteString(condition)
	c.hasCond = true
}

// cond appends a structured condition. The value is rendered verbatim with
// no quoting or escaping.
func (c *clause) cond(column string, op Op, value string, conn Connector) {
	c.raw(column+op.String()+value, conn)
}

// condParam appends a structured condition whose value is bound as a
// parameter, writing a dialect-appropriate placeholder in its place.
func (c *clause) condParam(column string, op Op, value any, conn Connector) {
	if c.hasCond {
		c.b.WriteString(" " + conn.String() + " ")
	}
	c.b.WriteString(column)
	c.b.WriteString(op.String())
	c.b.WriteString(c.b.appendParam(column, value))
	c.hasCond = true
}

// openGroup and closeGroup append literal parentheses. No balance is
// tracked; an unmatched group surfaces as an engine-side syntax error, not
// a builder error.
func (c *clause) openGroup()  { c.b.WriteByte('(') }
func (c *clause) closeGroup() { c.b.WriteByte(')') }

// connOf resolves the optional trailing connector argument of the fluent
// condition methods.
func connOf(conn []Connector) Connector {
	if len(conn) == 0 {
		return None
	}
	return conn[0]
}

// Where composes a WHERE clause over free-text column names, bound to the
// owning statement builder O. Every method returns either the composer (to
// continue the clause) or, via End, the owner (to continue with
// statement-level operations), so a statement can be built in one chain.
type Where[O any] struct {
	clause
	owner O
}

func newWhere[O any](owner O, b *Builder, grouped bool) *Where[O] {
	w := &Where[O]{clause: clause{b: b}, owner: owner}
	w.begin(grouped)
	return w
}

// Raw appends a pre-formatted condition fragment, preceded by the given
// connector unless it is the first condition in the clause.
func (w *Where[O]) Raw(condition string, conn ...Connector) *Where[O] {
	w.raw(condition, connOf(conn))
	return w
}

// Cond appends a structured condition. The value is written verbatim;
// quoting and escaping are the caller's responsibility.
func (w *Where[O]) Cond(column string, op Op, value string, conn ...Connector) *Where[O] {
	w.cond(column, op, value, connOf(conn))
	return w
}

// CondParam appends a structured condition whose value is bound as a
// parameter instead of being written into the statement text.
func (w *Where[O]) CondParam(column string, op Op, value any, conn ...Connector) *Where[O] {
	w.condParam(column, op, value, connOf(conn))
	return w
}

// OpenGroup appends a literal '('.
func (w *Where[O]) OpenGroup() *Where[O] {
	w.openGroup()
	return w
}

// CloseGroup appends a literal ')'.
func (w *Where[O]) CloseGroup() *Where[O] {
	w.closeGroup()
	return w
}

// End returns the owning statement builder.
func (w *Where[O]) End() O {
	return w.owner
}

// WhereOf composes a WHERE clause whose structured conditions are restricted
// to columns of schema S.
type WhereOf[S Schema, O any] struct {
	clause
	owner O
}

func newWhereOf[S Schema, O any](owner O, b *Builder, grouped bool) *WhereOf[S, O] {
	w := &WhereOf[S, O]{clause: clause{b: b}, owner: owner}
	w.begin(grouped)
	return w
}

// Raw appends a pre-formatted condition fragment.
func (w *WhereOf[S, O]) Raw(condition string, conn ...Connector) *WhereOf[S, O] {
	w.raw(condition, connOf(conn))
	return w
}

// Cond appends a structured condition on a column of S. The value is
// written verbatim with no quoting.
func (w *WhereOf[S, O]) Cond(column Column[S], op Op, value string, conn ...Connector) *WhereOf[S, O] {
	w.cond(string(column), op, value, connOf(conn))
	return w
}

// CondParam appends a structured condition on a column of S whose value is
// bound as a parameter.
func (w *WhereOf[S, O]) CondParam(column Column[S], op Op, value any, conn ...Connector) *WhereOf[S, O] {
	w.condParam(string(column), op, value, connOf(conn))
	return w
}

// OpenGroup appends a literal '('.
func (w *WhereOf[S, O]) OpenGroup() *WhereOf[S, O] {
	w.openGroup()
	return w
}

// CloseGroup appends a literal ')'.
func (w *WhereOf[S, O]) CloseGroup() *WhereOf[S, O] {
	w.closeGroup()
	return w
}

// End returns the owning statement builder.
func (w *WhereOf[S, O]) End() O {
	return w.owner
}

// WhereJoin composes a WHERE clause over a two-table statement. Conditions
// on the primary schema S go through Cond; conditions on the joined schema
// J go through CondJoined. Columns are qualified with their table name to
// keep references unambiguous across the join.
type WhereJoin[S, J Schema, O any] struct {
	clause
	owner O
}

func newWhereJoin[S, J Schema, O any](owner O, b *Builder, grouped bool) *WhereJoin[S, J, O] {
	w := &WhereJoin[S, J, O]{clause: clause{b: b}, owner: owner}
	w.begin(grouped)
	return w
}

// Raw appends a pre-formatted condition fragment.
func (w *WhereJoin[S, J, O]) Raw(condition string, conn ...Connector) *WhereJoin[S, J, O] {
	w.raw(condition, connOf(conn))
	return w
}

// Cond appends a structured condition on a column of the primary table S.
func (w *WhereJoin[S, J, O]) Cond(column Column[S], op Op, value string, conn ...Connector) *WhereJoin[S, J, O] {
	w.cond(TableOf[S]()+"."+string(column), op, value, connOf(conn))
	return w
}

// CondJoined appends a structured condition on a column of the joined
// table J.
func (w *WhereJoin[S, J, O]) CondJoined(column Column[J], op Op, value string, conn ...Connector) *WhereJoin[S, J, O] {
	w.cond(TableOf[J]()+"."+string(column), op, value, connOf(conn))
	return w
}

// CondParam appends a parameter-bound condition on a column of S.
func (w *WhereJoin[S, J, O]) CondParam(column Column[S], op Op, value any, conn ...Connector) *WhereJoin[S, J, O] {
	w.condParam(TableOf[S]()+"."+string(column), op, value, connOf(conn))
	return w
}

// OpenGroup appends a literal '('.
func (w *WhereJoin[S, J, O]) OpenGroup() *WhereJoin[S, J, O] {
	w.openGroup()
	return w
}

// CloseGroup appends a literal ')'.
func (w *WhereJoin[S, J, O]) CloseGroup() *WhereJoin[S, J, O] {
	w.closeGroup()
	return w
}

// End returns the owning statement builder.
func (w *WhereJoin[S, J, O]) End() O {
	return w.owner
}
