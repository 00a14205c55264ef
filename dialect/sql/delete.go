package sql

// Deleter builds a DELETE statement against an explicitly named table. The
// buffer is seeded with "DELETE FROM <table>" at construction.
type Deleter struct {
	b     Builder
	where *Where[*Deleter]
}

// DeleteFromTable starts a DELETE statement against the given table name.
// The name is written verbatim with no quoting.
func DeleteFromTable(table string) *Deleter {
	d := &Deleter{}
	d.b.WriteString("DELETE FROM " + table)
	return d
}

// WithDialect sets the dialect used for parameter placeholders.
func (d *Deleter) WithDialect(name string) *Deleter {
	d.b.SetDialect(name)
	return d
}

// StartWhere opens the WHERE clause and returns its composer. Only the
// first call writes the WHERE keyword; re-entering returns the same
// composer with its condition state intact.
func (d *Deleter) StartWhere() *Where[*Deleter] {
	if d.where == nil {
		d.where = newWhere(d, &d.b, false)
	}
	return d.where
}

// StartWhereGroup opens the WHERE clause with a leading group.
func (d *Deleter) StartWhereGroup() *Where[*Deleter] {
	if d.where == nil {
		d.where = newWhere(d, &d.b, true)
	}
	return d.where
}

// String renders the statement, terminated with ';'. Idempotent; with no
// clause composed it yields exactly "DELETE FROM <table>;".
func (d *Deleter) String() string {
	return d.b.String()
}

// Query returns the rendered statement and its bound parameters.
func (d *Deleter) Query() (string, []Param) {
	return d.b.String(), d.b.Params()
}

// DeleteOf builds a DELETE statement against the table of schema S, with
// structured conditions restricted to columns of S.
type DeleteOf[S Schema] struct {
	b     Builder
	where *WhereOf[S, *DeleteOf[S]]
}

// DeleteFrom starts a typed DELETE on the table of S.
func DeleteFrom[S Schema]() *DeleteOf[S] {
	d := &DeleteOf[S]{}
	d.b.WriteString("DELETE FROM " + TableOf[S]())
	return d
}

// WithDialect sets the dialect used for parameter placeholders.
func (d *DeleteOf[S]) WithDialect(name string) *DeleteOf[S] {
	d.b.SetDialect(name)
	return d
}

// StartWhere opens the WHERE clause and returns its composer.
func (d *DeleteOf[S]) StartWhere() *WhereOf[S, *DeleteOf[S]] {
	if d.where == nil {
		d.where = newWhereOf[S](d, &d.b, false)
	}
	return d.where
}

// StartWhereGroup opens the WHERE clause with a leading group.
func (d *DeleteOf[S]) StartWhereGroup() *WhereOf[S, *DeleteOf[S]] {
	if d.where == nil {
		d.where = newWhereOf[S](d, &d.b, true)
	}
	return d.where
}

// String renders the statement, terminated with ';'. Idempotent.
func (d *DeleteOf[S]) String() string {
	return d.b.String()
}

// Query returns the rendered statement and its bound parameters.
func (d *DeleteOf[S]) Query() (string, []Param) {
	return d.b.String(), d.b.Params()
}
