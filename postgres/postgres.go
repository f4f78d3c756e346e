// Package postgres adapts PostgreSQL driver errors to the sqlerr
// classifier. It understands both pgx (*pgconn.PgError) and lib/pq
// (*pq.Error) and works on wrapped errors via errors.As.
package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/jmgilman/go/sqlerr"
)

// Extracter implements sqlerr.ConstraintNameExtracter for PostgreSQL.
// The server reports the violated constraint's name directly on the error,
// so no message parsing is needed.
type Extracter struct{}

// ExtractConstraintName returns the constraint name carried by a pgx or
// lib/pq error, or "" when the cause is not a PostgreSQL driver error or
// the server did not name a constraint.
func (Extracter) ExtractConstraintName(cause error) string {
	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		return pgErr.ConstraintName
	}

	var pqErr *pq.Error
	if errors.As(cause, &pqErr) {
		return pqErr.Constraint
	}

	return ""
}

// SignalFromError builds a classification signal from a PostgreSQL driver
// error. The statement is the SQL being executed when the failure
// occurred; pass "" if unknown. Returns false when err does not carry a
// pgx or lib/pq error anywhere in its chain.
//
// PostgreSQL reports no numeric vendor code, so Signal.VendorCode is
// always zero.
func SignalFromError(err error, statement string) (sqlerr.Signal, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return sqlerr.Signal{
			SQLState:  pgErr.Code,
			Message:   pgErr.Message,
			Statement: statement,
			Cause:     err,
		}, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return sqlerr.Signal{
			SQLState:  string(pqErr.Code),
			Message:   pqErr.Message,
			Statement: statement,
			Cause:     err,
		}, true
	}

	return sqlerr.Signal{}, false
}

// Options returns exact-code rules for PostgreSQL states the curated set
// does not cover. Pass them to sqlerr.New alongside the Extracter:
//
//	c := sqlerr.New(postgres.Extracter{}, postgres.Options()...)
//
// The rules map deadlock_detected to lock acquisition failure,
// lock_not_available to pessimistic lock failure, and query_canceled to
// the query-timeout path.
func Options() []sqlerr.Option {
	return []sqlerr.Option{
		sqlerr.WithExactCode(pgerrcode.DeadlockDetected, sqlerr.CategoryLockAcquisition),
		sqlerr.WithExactCode(pgerrcode.LockNotAvailable, sqlerr.CategoryPessimisticLock),
		sqlerr.WithExactCode(pgerrcode.QueryCanceled, sqlerr.CategoryQueryTimeout),
	}
}
