package sql

import "strconv"

// Selector builds a SELECT statement over free-text table and column names.
// The statement text accumulates in construction order, so fluent calls are
// expected in SQL clause order: columns, FROM, JOIN, WHERE, ORDER BY, LIMIT.
// Out-of-order calls are not rejected; the resulting text is simply invalid
// SQL, surfaced by the engine at execution time.
type Selector struct {
	b       Builder
	hasCols bool
	where   *Where[*Selector]
}

// Select starts a SELECT statement with the given columns.
func Select(columns ...string) *Selector {
	s := &Selector{}
	s.b.WriteString("SELECT")
	return s.Columns(columns...)
}

// WithDialect sets the dialect used for parameter placeholders.
func (s *Selector) WithDialect(name string) *Selector {
	s.b.SetDialect(name)
	return s
}

// Columns appends columns to the selected-column list.
func (s *Selector) Columns(columns ...string) *Selector {
	for _, c := range columns {
		if s.hasCols {
			s.b.WriteString(", ")
		} else {
			s.b.WriteByte(' ')
		}
		s.b.WriteString(c)
		s.hasCols = true
	}
	return s
}

// From appends the FROM clause.
func (s *Selector) From(table string) *Selector {
	if !s.hasCols {
		s.b.WriteString(" *")
		s.hasCols = true
	}
	s.b.WriteString(" FROM " + table)
	return s
}

// Join appends a JOIN to the given table.
func (s *Selector) Join(table string) *Selector {
	s.b.WriteString(" JOIN " + table)
	return s
}

// On appends the join condition left=right.
func (s *Selector) On(left, right string) *Selector {
	s.b.WriteString(" ON " + left + "=" + right)
	return s
}

// StartWhere opens the WHERE clause and returns its composer. The WHERE
// keyword is written once; repeated calls return the same composer with its
// condition state intact, so a chain may re-enter the clause after any
// condition.
func (s *Selector) StartWhere() *Where[*Selector] {
	if s.where == nil {
		s.where = newWhere(s, &s.b, false)
	}
	return s.where
}

// StartWhereGroup opens the WHERE clause with a leading group. Like
// StartWhere, only the first call writes anything.
func (s *Selector) StartWhereGroup() *Where[*Selector] {
	if s.where == nil {
		s.where = newWhere(s, &s.b, true)
	}
	return s.where
}

// OrderBy appends an ORDER BY clause.
func (s *Selector) OrderBy(columns ...string) *Selector {
	s.b.WriteString(" ORDER BY ")
	for i, c := range columns {
		if i > 0 {
			s.b.WriteString(", ")
		}
		s.b.WriteString(c)
	}
	return s
}

// Limit appends a LIMIT clause.
func (s *Selector) Limit(n int) *Selector {
	s.b.WriteString(" LIMIT " + strconv.Itoa(n))
	return s
}

// String renders the statement, terminated with ';'. Idempotent.
func (s *Selector) String() string {
	return s.b.String()
}

// Query returns the rendered statement and its bound parameters.
func (s *Selector) Query() (string, []Param) {
	return s.b.String(), s.b.Params()
}

// SelectOf builds a SELECT statement whose table and column identifiers
// come from schema S. The table name and selected columns are fixed at
// construction; misspelled or foreign column references fail to compile.
type SelectOf[S Schema] struct {
	b     Builder
	where *WhereOf[S, *SelectOf[S]]
}

// SelectFrom starts a typed SELECT on the table of S. An empty column list
// selects *.
func SelectFrom[S Schema](columns ...Column[S]) *SelectOf[S] {
	s := &SelectOf[S]{}
	s.b.WriteString("SELECT ")
	writeColumns(&s.b, columns)
	s.b.WriteString(" FROM " + TableOf[S]())
	return s
}

// WithDialect sets the dialect used for parameter placeholders.
func (s *SelectOf[S]) WithDialect(name string) *SelectOf[S] {
	s.b.SetDialect(name)
	return s
}

// StartWhere opens the WHERE clause and returns its composer. Only the
// first call writes the WHERE keyword; re-entering returns the same
// composer.
func (s *SelectOf[S]) StartWhere() *WhereOf[S, *SelectOf[S]] {
	if s.where == nil {
		s.where = newWhereOf[S](s, &s.b, false)
	}
	return s.where
}

// StartWhereGroup opens the WHERE clause with a leading group.
func (s *SelectOf[S]) StartWhereGroup() *WhereOf[S, *SelectOf[S]] {
	if s.where == nil {
		s.where = newWhereOf[S](s, &s.b, true)
	}
	return s.where
}

// OrderBy appends an ORDER BY clause over columns of S.
func (s *SelectOf[S]) OrderBy(columns ...Column[S]) *SelectOf[S] {
	s.b.WriteString(" ORDER BY ")
	writeColumns(&s.b, columns)
	return s
}

// Limit appends a LIMIT clause.
func (s *SelectOf[S]) Limit(n int) *SelectOf[S] {
	s.b.WriteString(" LIMIT " + strconv.Itoa(n))
	return s
}

// String renders the statement, terminated with ';'. Idempotent.
func (s *SelectOf[S]) String() string {
	return s.b.String()
}

// Query returns the rendered statement and its bound parameters.
func (s *SelectOf[S]) Query() (string, []Param) {
	return s.b.String(), s.b.Params()
}

// SelectJoin builds a SELECT over the table of S joined to the table of J.
// The join condition is typed on both sides and the joined columns are
// qualified with their table names.
type SelectJoin[S, J Schema] struct {
	b     Builder
	where *WhereJoin[S, J, *SelectJoin[S, J]]
}

// SelectJoining starts a typed two-table SELECT, joining S to J on
// S.on = J.to. The projected columns are free text so either side of the
// join can be referenced, qualified as needed. An empty list selects *.
func SelectJoining[S, J Schema](on Column[S], to Column[J], columns ...string) *SelectJoin[S, J] {
	s := &SelectJoin[S, J]{}
	s.b.WriteString("SELECT")
	if len(columns) == 0 {
		s.b.WriteString(" *")
	}
	for i, c := range columns {
		if i > 0 {
			s.b.WriteString(", ")
		} else {
			s.b.WriteByte(' ')
		}
		s.b.WriteString(c)
	}
	s.b.WriteString(" FROM " + TableOf[S]() +
		" JOIN " + TableOf[J]() +
		" ON " + TableOf[S]() + "." + string(on) + "=" + TableOf[J]() + "." + string(to))
	return s
}

// WithDialect sets the dialect used for parameter placeholders.
func (s *SelectJoin[S, J]) WithDialect(name string) *SelectJoin[S, J] {
	s.b.SetDialect(name)
	return s
}

// StartWhere opens the WHERE clause and returns its composer.
func (s *SelectJoin[S, J]) StartWhere() *WhereJoin[S, J, *SelectJoin[S, J]] {
	if s.where == nil {
		s.where = newWhereJoin[S, J](s, &s.b, false)
	}
	return s.where
}

// StartWhereGroup opens the WHERE clause with a leading group.
func (s *SelectJoin[S, J]) StartWhereGroup() *WhereJoin[S, J, *SelectJoin[S, J]] {
	if s.where == nil {
		s.where = newWhereJoin[S, J](s, &s.b, true)
	}
	return s.where
}

// String renders the statement, terminated with ';'. Idempotent.
func (s *SelectJoin[S, J]) String() string {
	return s.b.String()
}

// Query returns the rendered statement and its bound parameters.
func (s *SelectJoin[S, J]) Query() (string, []Param) {
	return s.b.String(), s.b.Params()
}
