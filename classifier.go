package sqlerr

// Classifier maps raw SQL failure signals to the Category taxonomy.
//
// A Classifier holds only read-only state: the package's curated category
// tables, any extra exact-code rules added at construction, the injected
// constraint-name extracter, and the fallback hook. It is therefore safe
// for concurrent use by multiple goroutines without locking, and Classify
// is a pure function of its inputs plus the injected extracter.
type Classifier struct {
	extracter ConstraintNameExtracter
	fallback  FallbackFunc
	extra     map[string]Category
}

// New creates a Classifier using the given constraint-name extracter.
// A nil extracter is replaced with NopExtracter, so constraint names are
// simply never recovered.
//
// Example:
//
//	c := sqlerr.New(postgres.Extracter{}, postgres.Options()...)
func New(extracter ConstraintNameExtracter, opts ...Option) *Classifier {
	if extracter == nil {
		extracter = NopExtracter{}
	}

	c := &Classifier{
		extracter: extracter,
		fallback:  defaultFallback,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps a failure signal to exactly one category.
//
// Every category except CategoryQueryTimeout is reported through the first
// result; classified is then non-nil and err is nil. A cancelled or
// interrupted query inverts this: classified is nil and err is a
// *QueryTimeoutError. Exactly one of the two results is always non-nil.
// The asymmetry is deliberate, so callers cannot accidentally feed a
// cancelled query into the same retry handling as the other categories.
//
// Classify itself never fails. A missing or malformed SQLSTATE degrades to
// the fallback (CategoryGeneric unless replaced via WithFallback), and a
// missing extracter result degrades to an empty constraint name. The
// original cause is preserved unmodified in either result.
func (c *Classifier) Classify(sig Signal) (classified ClassifiedError, err error) {
	if sig.SQLState != "" {
		if cat, ok := c.resolve(sig); ok {
			if cat == CategoryQueryTimeout {
				return nil, &QueryTimeoutError{
					Message:   sig.Message,
					Statement: sig.Statement,
					Cause:     sig.Cause,
				}
			}
			return c.build(cat, sig), nil
		}
	}

	return c.fallback(sig), nil
}

// resolve applies the code-based rules in their documented order:
// curated exact codes, construction-time exact codes, then the class-code
// tables by priority.
func (c *Classifier) resolve(sig Signal) (Category, bool) {
	if cat, ok := exactRules[sig.SQLState]; ok {
		return cat, true
	}
	if cat, ok := c.extra[sig.SQLState]; ok {
		return cat, true
	}

	classCode := sig.classCode()
	if classCode == "" {
		return "", false
	}
	for _, rule := range classRules {
		if rule.table.contains(classCode) {
			return rule.category, true
		}
	}
	return "", false
}

// build constructs the classified error, delegating to the extracter for
// the constraint name on integrity violations. The extracter runs exactly
// once per integrity violation; an empty result is kept as-is.
func (c *Classifier) build(cat Category, sig Signal) ClassifiedError {
	e := newSQLError(cat, sig)
	if cat == CategoryIntegrityViolation {
		e.constraintName = c.extracter.ExtractConstraintName(sig.Cause)
	}
	return e
}

// defaultFallback handles a signal no code-based rule matched.
func defaultFallback(sig Signal) ClassifiedError {
	return newSQLError(CategoryGeneric, sig)
}
