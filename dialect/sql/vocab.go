package sql

// Op is a comparison operator usable in a structured condition. Ops render
// to their SQL symbol or keyword; keyword operators carry their surrounding
// spaces so conditions concatenate without extra formatting.
type Op int

const (
	// OpEQ is the = operator.
	OpEQ Op = iota
	// OpNEQ is the <> operator.
	OpNEQ
	// OpGT is the > operator.
	OpGT
	// OpGTE is the >= operator.
	OpGTE
	// OpLT is the < operator.
	OpLT
	// OpLTE is the <= operator.
	OpLTE
	// OpLike is the LIKE operator.
	OpLike
	// OpNotLike is the NOT LIKE operator.
	OpNotLike
	// OpIsNull is the IS NULL postfix operator. Conditions using it take an
	// empty value.
	OpIsNull
	// OpNotNull is the IS NOT NULL postfix operator.
	OpNotNull
)

var ops = [...]string{
	OpEQ:      "=",
	OpNEQ:     "<>",
	OpGT:      ">",
	OpGTE:     ">=",
	OpLT:      "<",
	OpLTE:     "<=",
	OpLike:    " LIKE ",
	OpNotLike: " NOT LIKE ",
	OpIsNull:  " IS NULL",
	OpNotNull: " IS NOT NULL",
}

// String returns the SQL text of the operator.
func (o Op) String() string {
	if o < 0 || int(o) >= len(ops) {
		return ""
	}
	return ops[o]
}

// Connector is the logical joiner placed between successive conditions in a
// WHERE clause.
type Connector int

const (
	// None joins nothing. It is the implied connector of the first condition
	// in a clause and renders to the empty string.
	None Connector = iota
	// And is the AND connector.
	And
	// Or is the OR connector.
	Or
)

var connectors = [...]string{
	None: "",
	And:  "AND",
	Or:   "OR",
}

// String returns the SQL keyword of the connector.
func (c Connector) String() string {
	if c < 0 || int(c) >= len(connectors) {
		return ""
	}
	return connectors[c]
}
