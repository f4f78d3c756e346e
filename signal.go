package sqlerr

// Signal is the raw failure report handed to the classifier. It is
// normally produced by a vendor adapter (see the postgres, mysql, and
// sqlite subpackages) from a driver error, but callers may build one by
// hand when they already hold the pieces.
//
// All fields except Cause are optional. An empty SQLState means the driver
// did not report one; classification then falls straight through to the
// fallback.
type Signal struct {
	// SQLState is the standardized alphanumeric failure code, e.g. "42000".
	SQLState string

	// VendorCode is the vendor-specific numeric error code, if any.
	// It is carried through to the result but plays no part in
	// SQLSTATE-based classification.
	VendorCode int

	// Message is a human-readable description of the failure.
	Message string

	// Statement is the SQL being executed when the failure occurred.
	Statement string

	// Cause is the original driver error, preserved verbatim in the result.
	Cause error
}

// classCode returns the two-character SQLSTATE class prefix, or "" when the
// state is absent or too short to carry one. The class code is always
// derived here, never constructed independently.
func (s Signal) classCode() string {
	if len(s.SQLState) < 2 {
		return ""
	}
	return s.SQLState[:2]
}
