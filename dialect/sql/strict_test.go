package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentstmt/fluentstmt"
)

func TestValidate(t *testing.T) {
	t.Run("Balanced", func(t *testing.T) {
		stmt := Select("ID").From("Users").
			StartWhereGroup().
			Cond("A", OpEQ, "1").
			CloseGroup().
			End().
			String()
		assert.NoError(t, Validate(stmt))
	})

	t.Run("ExtraClose", func(t *testing.T) {
		stmt := Select("ID").From("Users").
			StartWhere().
			OpenGroup().
			Cond("A", OpEQ, "1").
			CloseGroup().
			CloseGroup().
			End().
			String()
		err := Validate(stmt)
		require.Error(t, err)
		assert.ErrorIs(t, err, fluentstmt.ErrUnbalancedGroup)
		assert.True(t, fluentstmt.IsValidation(err))
	})

	t.Run("UnclosedGroup", func(t *testing.T) {
		stmt := Select("ID").From("Users").
			StartWhereGroup().
			Cond("A", OpEQ, "1").
			End().
			String()
		assert.ErrorIs(t, Validate(stmt), fluentstmt.ErrUnbalancedGroup)
	})

	t.Run("ParensInsideLiteralIgnored", func(t *testing.T) {
		stmt := Select("ID").From("Users").
			StartWhere().
			Cond("Name", OpEQ, "'a)b'").
			End().
			String()
		assert.NoError(t, Validate(stmt))
	})

	t.Run("EscapedQuoteInsideLiteral", func(t *testing.T) {
		assert.NoError(t, Validate("SELECT ID FROM Users WHERE Name='O''Brien (Jr)';"))
	})

	t.Run("DanglingConnector", func(t *testing.T) {
		assert.ErrorIs(t,
			Validate("SELECT ID FROM Users WHERE A=1 AND;"),
			fluentstmt.ErrDanglingConnector)
		assert.ErrorIs(t,
			Validate("SELECT ID FROM Users WHERE (A=1 OR);"),
			fluentstmt.ErrDanglingConnector)
		assert.ErrorIs(t,
			Validate("SELECT ID FROM Users WHERE;"),
			fluentstmt.ErrDanglingConnector)
	})
}

func TestStrict(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		stmt, params, err := Strict(DeleteFrom[Users]().
			StartWhere().
			CondParam(UserID, OpEQ, 1).
			End())
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM Users WHERE ID=?;", stmt)
		assert.Len(t, params, 1)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, _, err := Strict(DeleteFrom[Users]().
			StartWhere().
			OpenGroup().
			Cond(UserID, OpEQ, "1").
			End())
		assert.ErrorIs(t, err, fluentstmt.ErrUnbalancedGroup)
	})
}

// Validation is opt-in: the permissive default path renders unbalanced
// text without complaint.
func TestPermissiveDefaultUnchanged(t *testing.T) {
	stmt := DeleteFrom[Users]().
		StartWhere().
		OpenGroup().
		Cond(UserID, OpEQ, "1").
		End().
		String()
	assert.Equal(t, "DELETE FROM Users WHERE (ID=1;", stmt)
}
