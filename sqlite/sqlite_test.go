package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	sqlite3 "modernc.org/sqlite/lib"
)

// The driver's Error type is only produced by a live database, so the
// mapping helpers are tested directly and the driver-facing entry points
// are covered for the non-driver paths.

func TestStateForCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{
			name: "generic error",
			code: sqlite3.SQLITE_ERROR,
			want: "42000",
		},
		{
			name: "constraint",
			code: sqlite3.SQLITE_CONSTRAINT,
			want: "23000",
		},
		{
			name: "extended constraint code keeps primary mapping",
			code: sqlite3.SQLITE_CONSTRAINT | (8 << 8), // SQLITE_CONSTRAINT_UNIQUE
			want: "23000",
		},
		{
			name: "type mismatch",
			code: sqlite3.SQLITE_MISMATCH,
			want: "22000",
		},
		{
			name: "busy",
			code: sqlite3.SQLITE_BUSY,
			want: "40001",
		},
		{
			name: "locked",
			code: sqlite3.SQLITE_LOCKED,
			want: "40001",
		},
		{
			name: "interrupt",
			code: sqlite3.SQLITE_INTERRUPT,
			want: "70100",
		},
		{
			name: "cannot open",
			code: sqlite3.SQLITE_CANTOPEN,
			want: "08006",
		},
		{
			name: "io error",
			code: sqlite3.SQLITE_IOERR,
			want: "08006",
		},
		{
			name: "not a database",
			code: sqlite3.SQLITE_NOTADB,
			want: "08006",
		},
		{
			name: "unmapped code",
			code: sqlite3.SQLITE_MISUSE,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, stateForCode(tt.code))
		})
	}
}

func TestConstraintFromMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{
			name: "unique constraint",
			msg:  "UNIQUE constraint failed: users.email (2067)",
			want: "users.email",
		},
		{
			name: "not null constraint",
			msg:  "NOT NULL constraint failed: users.name",
			want: "users.name",
		},
		{
			name: "check constraint",
			msg:  "CHECK constraint failed: positive_qty",
			want: "positive_qty",
		},
		{
			name: "primary key constraint",
			msg:  "PRIMARY KEY constraint failed: users.id",
			want: "users.id",
		},
		{
			name: "foreign key carries no identifier",
			msg:  "FOREIGN KEY constraint failed (787)",
			want: "",
		},
		{
			name: "unrelated message",
			msg:  "no such table: userz",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, constraintFromMessage(tt.msg))
		})
	}
}

func TestExtracter_NotSQLiteError(t *testing.T) {
	require.Empty(t, Extracter{}.ExtractConstraintName(errors.New("boom")))
	require.Empty(t, Extracter{}.ExtractConstraintName(nil))
}

func TestSignalFromError_NotSQLiteError(t *testing.T) {
	_, ok := SignalFromError(errors.New("boom"), "")
	require.False(t, ok)
}
