package sqlerr

import "fmt"

// sqlError is the concrete implementation of ClassifiedError.
// It is private to enforce construction through the classifier.
type sqlError struct {
	category       Category
	classification Classification
	message        string
	statement      string
	constraintName string
	vendorCode     int
	cause          error
}

// newSQLError builds a classified error for the given category, carrying
// the signal's message, statement, vendor code, and cause through verbatim.
func newSQLError(cat Category, sig Signal) *sqlError {
	return &sqlError{
		category:       cat,
		classification: classificationFor(cat),
		message:        sig.Message,
		statement:      sig.Statement,
		vendorCode:     sig.VendorCode,
		cause:          sig.Cause,
	}
}

// Error returns the string representation of the error.
// Format: "[CATEGORY] message" or "[CATEGORY] message: cause" if a cause is
// present. With no message the category and cause alone are rendered.
func (e *sqlError) Error() string {
	switch {
	case e.message != "" && e.cause != nil:
		return fmt.Sprintf("[%s] %s: %v", e.category, e.message, e.cause)
	case e.message != "":
		return fmt.Sprintf("[%s] %s", e.category, e.message)
	case e.cause != nil:
		return fmt.Sprintf("[%s] %v", e.category, e.cause)
	default:
		return fmt.Sprintf("[%s]", e.category)
	}
}

// Category returns the failure category.
func (e *sqlError) Category() Category {
	return e.category
}

// Classification returns the advisory transient/permanent reading.
func (e *sqlError) Classification() Classification {
	return e.classification
}

// Message returns the error message.
func (e *sqlError) Message() string {
	return e.message
}

// Statement returns the offending SQL statement text.
func (e *sqlError) Statement() string {
	return e.statement
}

// ConstraintName returns the violated constraint's name, if recovered.
func (e *sqlError) ConstraintName() string {
	return e.constraintName
}

// VendorCode returns the vendor-specific numeric error code.
func (e *sqlError) VendorCode() int {
	return e.vendorCode
}

// Unwrap returns the original driver error for standard library compatibility.
func (e *sqlError) Unwrap() error {
	return e.cause
}
