package sql

// Schema is the tag interface binding a Go type to a database table. A
// schema tag is an empty struct whose TableName result is used verbatim as
// the table identifier, and whose columns are declared as Column[S]
// constants. The compiler then rejects any column reference that does not
// belong to the schema a statement was built for:
//
//	type Users struct{}
//
//	func (Users) TableName() string { return "Users" }
//
//	const (
//	    UserID   sql.Column[Users] = "ID"
//	    UserName sql.Column[Users] = "Name"
//	)
//
// No escaping or quoting is applied to the table or column identifiers; the
// tag's declarations must be valid identifiers in the target dialect.
type Schema interface {
	TableName() string
}

// Column is a column identifier belonging to schema S.
type Column[S Schema] string

// String returns the column identifier.
func (c Column[S]) String() string {
	return string(c)
}

// TableOf returns the table name bound to schema S.
func TableOf[S Schema]() string {
	var s S
	return s.TableName()
}

// writeColumns appends a comma-separated column list to the buffer, or "*"
// when the list is empty.
func writeColumns[S Schema](b *Builder, columns []Column[S]) {
	if len(columns) == 0 {
		b.WriteString("*")
		return
	}
	for i, c := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(c))
	}
}
