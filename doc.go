// Package sqlerr classifies SQL failures into a small cross-vendor taxonomy.
//
// Database drivers report failures through partially standardized SQLSTATE
// codes plus vendor-specific numeric codes. This package maps such a raw
// failure signal to exactly one Category (grammar error, data error,
// integrity-constraint violation, connection failure, lock acquisition
// failure, pessimistic lock failure, query timeout, or generic), producing
// an immutable classified error that preserves the original cause for
// downstream inspection. It maintains full compatibility with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Features
//
//   - Closed category taxonomy keyed on the SQLSTATE class code
//   - Curated exact-code overrides for vendor quirks the class scheme misses
//   - Pluggable per-vendor constraint-name extraction
//   - Advisory transient/permanent classification for retry logic
//   - Immutable, concurrency-safe classification over read-only tables
//   - JSON serialization for API responses
//
// # Quick Start
//
// Classifying a driver failure:
//
//	c := sqlerr.New(postgres.Extracter{})
//	classified, timeout := c.Classify(sqlerr.Signal{
//	    SQLState:  "23505",
//	    Message:   "insert failed",
//	    Statement: "INSERT INTO orders ...",
//	    Cause:     driverErr,
//	})
//	if timeout != nil {
//	    // The query was cancelled or interrupted. This is deliberately
//	    // reported out of band so it cannot flow into retry handling.
//	    return timeout
//	}
//	if classified.Category() == sqlerr.CategoryIntegrityViolation {
//	    log.Println("violated constraint:", classified.ConstraintName())
//	}
//
// Retry logic:
//
//	if sqlerr.IsTransient(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
//
// # Classification Algorithm
//
// Classify applies rules in a fixed, documented order:
//
//  1. No SQLSTATE reported: fall through to the fallback.
//  2. Exact-code rules: a short curated list of full SQLSTATEs for
//     vendor-specific lock and cancellation cases ("40001", "61000",
//     "40XL1", "40XL2", "70100", "72000"). These win over class codes.
//  3. Class-code tables keyed on the first two characters of the SQLSTATE,
//     tried as grammar, integrity violation, connection, then data. The
//     order is a stable contract: class codes are curated to be disjoint,
//     but any future overlap resolves by this priority, never silently.
//  4. Fallback to CategoryGeneric, replaceable via WithFallback.
//
// # Query Timeout Asymmetry
//
// Every category except CategoryQueryTimeout is returned as a
// ClassifiedError. A cancelled or interrupted query is instead reported
// through Classify's second result as a *QueryTimeoutError, which is not a
// ClassifiedError. The split forces callers to route cancellation away
// from ordinary classify-then-maybe-retry handling; collapsing the two
// paths would silently change retry behavior for cancelled queries.
//
// # Vendor Adapters
//
// The classifier itself never inspects driver types. The subpackages
// postgres, mysql, and sqlite build Signals from driver errors and
// implement ConstraintNameExtracter for their vendor:
//
//	c := sqlerr.New(postgres.Extracter{}, postgres.Options()...)
//	if sig, ok := postgres.SignalFromError(err, query); ok {
//	    classified, timeout := c.Classify(sig)
//	    ...
//	}
//
// # Retry Classification
//
// Each category carries an advisory Classification (transient or
// permanent). Connection and lock failures are conventionally worth
// retrying; grammar, data, and integrity failures are not. The package
// only reports the conventional reading; retry decisions stay with the
// caller.
package sqlerr
