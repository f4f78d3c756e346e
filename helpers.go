package sqlerr

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var classified sqlerr.ClassifiedError
//	if sqlerr.As(err, &classified) {
//	    category := classified.Category()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCategory extracts the Category from an error.
// Returns CategoryGeneric if the error is nil or no ClassifiedError is
// found in its chain.
//
// Example:
//
//	if sqlerr.GetCategory(err) == sqlerr.CategoryIntegrityViolation {
//	    // Surface the constraint to the user
//	}
func GetCategory(err error) Category {
	if err == nil {
		return CategoryGeneric
	}

	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Category()
	}

	return CategoryGeneric
}

// GetClassification extracts the advisory Classification from an error.
// Returns ClassificationPermanent if the error is nil or not classified.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) Classification {
	if err == nil {
		return ClassificationPermanent
	}

	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Classification()
	}

	return ClassificationPermanent
}

// IsTransient returns true if the error carries a category conventionally
// worth retrying. Returns false for nil and unclassified errors, and
// always for *QueryTimeoutError (safe defaults).
//
// Example:
//
//	if sqlerr.IsTransient(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
func IsTransient(err error) bool {
	return GetClassification(err).IsTransient()
}

// GetConstraintName extracts the violated constraint's name from an error.
// Returns "" if the error is nil, not classified, not an integrity
// violation, or the vendor extracter could not recover a name.
func GetConstraintName(err error) string {
	if err == nil {
		return ""
	}

	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.ConstraintName()
	}

	return ""
}

// IsTimeout returns true if the error chain contains a *QueryTimeoutError,
// i.e. the failure was a cancelled or interrupted query.
func IsTimeout(err error) bool {
	var timeout *QueryTimeoutError
	return stderrors.As(err, &timeout)
}
