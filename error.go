package sqlerr

// ClassifiedError extends the standard error interface with the outcome of
// classifying a SQL failure.
//
// A ClassifiedError carries exactly one Category, the original driver error
// (via Unwrap), and the statement and constraint name when known. Values
// are immutable once constructed and compatible with standard library
// error handling (errors.Is, errors.As, errors.Unwrap).
type ClassifiedError interface {
	error

	// Category returns the failure category this error was classified as.
	Category() Category

	// Classification returns the advisory transient/permanent reading of
	// the category.
	Classification() Classification

	// Message returns the human-readable error message, if one was supplied.
	Message() string

	// Statement returns the SQL being executed when the failure occurred.
	// Returns "" if the statement was not supplied.
	Statement() string

	// ConstraintName returns the violated constraint's name. It is only
	// meaningful for CategoryIntegrityViolation and may be "" even then,
	// when the vendor extracter could not determine a name.
	ConstraintName() string

	// VendorCode returns the vendor-specific numeric error code, or 0 when
	// the driver did not report one.
	VendorCode() int

	// Unwrap returns the original driver error for errors.Is and errors.As
	// compatibility.
	Unwrap() error
}
