package sqlerr

// NewClassified constructs a ClassifiedError directly, carrying the
// signal's message, statement, vendor code, and cause. The classification
// is derived from the category using the default mapping.
//
// It exists for FallbackFunc implementations, which must produce a
// ClassifiedError without going through the rule tables. Values built here
// never run the constraint-name extracter; use the classifier for that.
//
// Example:
//
//	err := sqlerr.NewClassified(sqlerr.CategoryConnection, sig)
func NewClassified(category Category, sig Signal) ClassifiedError {
	return newSQLError(category, sig)
}
