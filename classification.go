package sqlerr

// Classification is an advisory reading of whether a failure category is
// conventionally worth retrying. The classifier itself makes no retry
// decision; callers remain free to ignore or override this hint.
type Classification string

const (
	// ClassificationTransient indicates failures that may succeed on retry.
	// Examples: lost connections, deadlock victims, lock wait timeouts.
	ClassificationTransient Classification = "TRANSIENT"

	// ClassificationPermanent indicates failures that will not succeed on
	// retry. Examples: syntax errors, constraint violations, bad data.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsTransient returns true if the classification indicates retry may succeed.
func (c Classification) IsTransient() bool {
	return c == ClassificationTransient
}

// defaultClassifications maps each category to its conventional reading.
var defaultClassifications = map[Category]Classification{
	// Transient failures (environment-dependent, may clear on retry)
	CategoryConnection:      ClassificationTransient,
	CategoryLockAcquisition: ClassificationTransient,
	CategoryPessimisticLock: ClassificationTransient,

	// Permanent failures (the statement or data is at fault)
	CategorySQLGrammar:         ClassificationPermanent,
	CategoryData:               ClassificationPermanent,
	CategoryIntegrityViolation: ClassificationPermanent,
	CategoryGeneric:            ClassificationPermanent,

	// Query cancellation is surfaced out of band, never retried blindly.
	CategoryQueryTimeout: ClassificationPermanent,
}

// classificationFor returns the classification for a category.
// Returns ClassificationPermanent for unknown categories (safe default).
func classificationFor(cat Category) Classification {
	if class, ok := defaultClassifications[cat]; ok {
		return class
	}
	return ClassificationPermanent
}
