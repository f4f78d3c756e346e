package sqlerr

import "fmt"

// QueryTimeoutError reports that query execution was cancelled or
// interrupted (SQLSTATE "70100" or "72000", or a vendor rule added via
// WithExactCode mapping to CategoryQueryTimeout).
//
// It is deliberately not a ClassifiedError and never appears in Classify's
// first result: cancellation must interrupt caller logic rather than be
// classified and possibly retried like the other categories. Callers that
// collapse the two return paths of Classify lose this distinction.
type QueryTimeoutError struct {
	// Message is the human-readable description carried from the signal.
	Message string

	// Statement is the SQL being executed when the query was cancelled.
	Statement string

	// Cause is the original driver error.
	Cause error
}

// Error returns the string representation of the error.
func (e *QueryTimeoutError) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return fmt.Sprintf("[%s] %s: %v", CategoryQueryTimeout, e.Message, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("[%s] %s", CategoryQueryTimeout, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("[%s] %v", CategoryQueryTimeout, e.Cause)
	default:
		return fmt.Sprintf("[%s]", CategoryQueryTimeout)
	}
}

// Unwrap returns the original driver error for standard library compatibility.
func (e *QueryTimeoutError) Unwrap() error {
	return e.Cause
}
