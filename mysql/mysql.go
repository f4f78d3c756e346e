// Package mysql adapts MySQL driver errors (go-sql-driver/mysql) to the
// sqlerr classifier.
//
// MySQL names the violated constraint only inside the error message, so
// the extracter recovers it from the text between known delimiters. A few
// conditions (most notably lock wait timeouts) report the catch-all
// SQLSTATE "HY000" and are only distinguishable by their vendor code; the
// package's fallback handles those.
package mysql

import (
	"errors"
	"regexp"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/jmgilman/go/sqlerr"
)

// Vendor error codes that the SQLSTATE class scheme cannot place.
const (
	// errLockWaitTimeout is ER_LOCK_WAIT_TIMEOUT: lock wait timeout
	// exceeded. Reported with SQLSTATE "HY000".
	errLockWaitTimeout = 1205

	// errLockDeadlock is ER_LOCK_DEADLOCK: deadlock found when trying to
	// get lock. Normally reported with SQLSTATE "40001" already.
	errLockDeadlock = 1213

	// errTooManyConnections is ER_CON_COUNT_ERROR.
	errTooManyConnections = 1040
)

var (
	// "Duplicate entry 'x' for key 'tbl.uniq_email'"
	duplicateKeyPattern = regexp.MustCompile(`for key '(?:[^'.]+\.)?([^']+)'`)

	// "... a foreign key constraint fails (`db`.`tbl`, CONSTRAINT `fk_order_customer` FOREIGN KEY ...)"
	foreignKeyPattern = regexp.MustCompile("CONSTRAINT `([^`]+)`")

	// "Check constraint 'positive_qty' is violated."
	checkPattern = regexp.MustCompile(`[Cc]heck constraint '([^']+)'`)

	// "Column 'customer_id' cannot be null"
	notNullPattern = regexp.MustCompile(`Column '([^']+)' cannot be null`)
)

// Extracter implements sqlerr.ConstraintNameExtracter for MySQL by parsing
// the server's error message.
type Extracter struct{}

// ExtractConstraintName recovers the violated constraint's name from a
// MySQL error message, or "" when the cause is not a MySQL driver error or
// the message matches no known shape. Duplicate-key messages qualified
// with a table name ("tbl.key_name") yield only the key name.
func (Extracter) ExtractConstraintName(cause error) string {
	var myErr *gomysql.MySQLError
	if !errors.As(cause, &myErr) {
		return ""
	}

	for _, pattern := range []*regexp.Regexp{
		duplicateKeyPattern,
		foreignKeyPattern,
		checkPattern,
		notNullPattern,
	} {
		if m := pattern.FindStringSubmatch(myErr.Message); m != nil {
			return m[1]
		}
	}
	return ""
}

// SignalFromError builds a classification signal from a MySQL driver
// error. The statement is the SQL being executed when the failure
// occurred; pass "" if unknown. Returns false when err does not carry a
// *mysql.MySQLError anywhere in its chain.
func SignalFromError(err error, statement string) (sqlerr.Signal, bool) {
	var myErr *gomysql.MySQLError
	if !errors.As(err, &myErr) {
		return sqlerr.Signal{}, false
	}

	return sqlerr.Signal{
		SQLState:   sqlState(myErr),
		VendorCode: int(myErr.Number),
		Message:    myErr.Message,
		Statement:  statement,
		Cause:      err,
	}, true
}

// sqlState normalizes the driver's fixed-width SQLSTATE field. Older
// server errors leave it zeroed, and "00000" means no state was reported;
// both normalize to absent.
func sqlState(myErr *gomysql.MySQLError) string {
	state := strings.TrimRight(string(myErr.SQLState[:]), "\x00")
	if state == "00000" {
		return ""
	}
	return state
}

// Fallback is a sqlerr.FallbackFunc that consults the MySQL vendor code
// for conditions hidden behind SQLSTATE "HY000": lock wait timeouts map to
// pessimistic lock failure, deadlocks to lock acquisition failure, and
// connection exhaustion to connection failure. Anything else classifies
// as generic.
func Fallback(sig sqlerr.Signal) sqlerr.ClassifiedError {
	switch sig.VendorCode {
	case errLockWaitTimeout:
		return sqlerr.NewClassified(sqlerr.CategoryPessimisticLock, sig)
	case errLockDeadlock:
		return sqlerr.NewClassified(sqlerr.CategoryLockAcquisition, sig)
	case errTooManyConnections:
		return sqlerr.NewClassified(sqlerr.CategoryConnection, sig)
	}
	return sqlerr.NewClassified(sqlerr.CategoryGeneric, sig)
}

// Options returns the classifier options for MySQL. Currently this wires
// Fallback in; pass them to sqlerr.New alongside the Extracter:
//
//	c := sqlerr.New(mysql.Extracter{}, mysql.Options()...)
func Options() []sqlerr.Option {
	return []sqlerr.Option{
		sqlerr.WithFallback(Fallback),
	}
}
