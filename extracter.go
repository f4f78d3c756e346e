package sqlerr

// ConstraintNameExtracter recovers the name of a violated integrity
// constraint from a raw driver error. Implementations are vendor-specific;
// the classifier invokes the extracter only when a failure classifies as
// CategoryIntegrityViolation.
//
// The extracter is a capability supplied at classifier construction, not
// something the classifier builds itself. Its ExtractConstraintName method
// may take arbitrarily long or return nothing; the classifier tolerates
// both without corrupting its own state.
type ConstraintNameExtracter interface {
	// ExtractConstraintName returns the violated constraint's name, or ""
	// when it cannot be determined. Returning "" is not an error.
	ExtractConstraintName(cause error) string
}

// ExtracterFunc adapts an ordinary function to a ConstraintNameExtracter.
//
// Example:
//
//	c := sqlerr.New(sqlerr.ExtracterFunc(func(cause error) string {
//	    var pgErr *pgconn.PgError
//	    if errors.As(cause, &pgErr) {
//	        return pgErr.ConstraintName
//	    }
//	    return ""
//	}))
type ExtracterFunc func(cause error) string

// ExtractConstraintName implements ConstraintNameExtracter.
func (f ExtracterFunc) ExtractConstraintName(cause error) string {
	return f(cause)
}

// NopExtracter is a ConstraintNameExtracter that never finds a name.
// Use it when no vendor-specific extraction is available.
type NopExtracter struct{}

// ExtractConstraintName implements ConstraintNameExtracter.
func (NopExtracter) ExtractConstraintName(error) string {
	return ""
}
