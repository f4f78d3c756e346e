// Package sqlerr provides vendor-neutral classification of SQL failures.
// It maps standardized SQLSTATE codes to a closed taxonomy of failure
// categories that downstream retry and error-reporting logic can rely on.
package sqlerr

// Category identifies one entry in the failure taxonomy.
// Categories are string-based for debuggability and natural JSON serialization.
type Category string

const (
	// CategorySQLGrammar indicates the statement itself is invalid:
	// syntax errors, unknown objects, access rule violations.
	CategorySQLGrammar Category = "SQL_GRAMMAR"

	// CategoryData indicates the statement was valid but the data was not:
	// truncation, numeric overflow, bad cardinality.
	CategoryData Category = "DATA"

	// CategoryIntegrityViolation indicates a declared integrity constraint
	// was violated (unique, foreign key, not null, check).
	CategoryIntegrityViolation Category = "INTEGRITY_VIOLATION"

	// CategoryConnection indicates the connection to the database failed
	// or was lost.
	CategoryConnection Category = "CONNECTION_FAILURE"

	// CategoryLockAcquisition indicates a lock could not be acquired:
	// serialization failures and detected deadlocks.
	CategoryLockAcquisition Category = "LOCK_ACQUISITION_FAILURE"

	// CategoryPessimisticLock indicates a pessimistic lock was not obtained
	// within the time requested.
	CategoryPessimisticLock Category = "PESSIMISTIC_LOCK_FAILURE"

	// CategoryQueryTimeout indicates query execution was cancelled or
	// interrupted. This category is never carried by a ClassifiedError;
	// it is reported through the distinct QueryTimeoutError path.
	CategoryQueryTimeout Category = "QUERY_TIMEOUT"

	// CategoryGeneric indicates a failure no other rule matched.
	CategoryGeneric Category = "GENERIC"
)
