// Package sqlite adapts SQLite driver errors (modernc.org/sqlite) to the
// sqlerr classifier.
//
// SQLite reports numeric result codes rather than SQLSTATEs, so the
// adapter maps each primary result code to the closest standard SQLSTATE
// when building a signal. SQLite also has no constraint catalog to name in
// errors; messages like "UNIQUE constraint failed: users.email" identify
// the violated columns instead, and the extracter reports that identifier
// as the constraint name.
package sqlite

import (
	"errors"
	"regexp"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jmgilman/go/sqlerr"
)

// "UNIQUE constraint failed: users.email" / "NOT NULL constraint failed: users.name"
// / "CHECK constraint failed: positive_qty"
var constraintPattern = regexp.MustCompile(`(?:UNIQUE|NOT NULL|CHECK|PRIMARY KEY) constraint failed: ([^\s(]+)`)

// Extracter implements sqlerr.ConstraintNameExtracter for SQLite by
// parsing the driver's error message.
type Extracter struct{}

// ExtractConstraintName recovers the violated constraint identifier from a
// SQLite error message, or "" when the cause is not a SQLite driver error
// or the message matches no known shape. Foreign key failures carry no
// identifier at all ("FOREIGN KEY constraint failed") and yield "".
func (Extracter) ExtractConstraintName(cause error) string {
	var sqErr *sqlite.Error
	if !errors.As(cause, &sqErr) {
		return ""
	}
	return constraintFromMessage(sqErr.Error())
}

func constraintFromMessage(msg string) string {
	if m := constraintPattern.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

// SignalFromError builds a classification signal from a SQLite driver
// error. The statement is the SQL being executed when the failure
// occurred; pass "" if unknown. Returns false when err does not carry a
// *sqlite.Error anywhere in its chain.
//
// The driver's result code is carried as the vendor code, and its primary
// code picks the SQLSTATE (see stateForCode).
func SignalFromError(err error, statement string) (sqlerr.Signal, bool) {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return sqlerr.Signal{}, false
	}

	return sqlerr.Signal{
		SQLState:   stateForCode(sqErr.Code()),
		VendorCode: sqErr.Code(),
		Message:    sqErr.Error(),
		Statement:  statement,
		Cause:      err,
	}, true
}

// stateForCode maps a SQLite result code to the closest standard SQLSTATE.
// Extended result codes carry their primary code in the low byte.
// Unmapped codes yield "", which classifies through the fallback.
func stateForCode(code int) string {
	switch code & 0xff {
	case sqlite3.SQLITE_ERROR:
		// Syntax errors, unknown tables and columns.
		return "42000"
	case sqlite3.SQLITE_CONSTRAINT:
		return "23000"
	case sqlite3.SQLITE_MISMATCH:
		return "22000"
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		// Lock contention; transient, like a serialization failure.
		return "40001"
	case sqlite3.SQLITE_INTERRUPT:
		// Cancelled via sqlite3_interrupt, e.g. on context cancellation.
		return "70100"
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_NOTADB:
		return "08006"
	default:
		return ""
	}
}
