package sql

import (
	"strings"

	"github.com/fluentstmt/fluentstmt"
)

// Validate checks a rendered statement for the composition mistakes the
// builders deliberately let through: unbalanced condition groups and a
// clause that ends on a connector. It is a separate, opt-in layer; the
// builders themselves stay permissive and never call it.
//
// Quoted string literals are skipped, so parentheses inside values do not
// affect the balance check. Validate inspects text only; it is not a SQL
// parser and passes statements with other syntax errors through unchanged.
func Validate(stmt string) error {
	depth := 0
	inString := false
	for i := 0; i < len(stmt); i++ {
		switch stmt[i] {
		case '\'':
			// A doubled quote inside a literal is an escaped quote.
			if inString && i+1 < len(stmt) && stmt[i+1] == '\'' {
				i++
				continue
			}
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString {
				depth--
				if depth < 0 {
					return fluentstmt.NewValidationError(stmt, i, fluentstmt.ErrUnbalancedGroup)
				}
			}
		}
	}
	if depth > 0 {
		return fluentstmt.NewValidationError(stmt, -1, fluentstmt.ErrUnbalancedGroup)
	}
	trimmed := strings.TrimRight(strings.TrimSuffix(stmt, ";"), " )")
	for _, kw := range []string{" AND", " OR", " WHERE"} {
		if strings.HasSuffix(trimmed, kw) {
			return fluentstmt.NewValidationError(stmt, len(trimmed)-len(kw)+1, fluentstmt.ErrDanglingConnector)
		}
	}
	return nil
}

// Strict renders the statement and validates it in one step, for callers
// that want composition mistakes surfaced before execution.
func Strict(q Querier) (string, []Param, error) {
	stmt, params := q.Query()
	if err := Validate(stmt); err != nil {
		return "", nil, err
	}
	return stmt, params, nil
}
