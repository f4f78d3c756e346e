package sqlerr

// Option configures a Classifier at construction. All options are applied
// before the first call to Classify; a constructed Classifier is immutable.
type Option func(*Classifier)

// FallbackFunc handles a signal no code-based rule matched. It must return
// a non-nil ClassifiedError; use NewClassified to build one.
type FallbackFunc func(sig Signal) ClassifiedError

// WithFallback replaces the fallback step applied when neither an exact
// code nor a class code matches. The default fallback classifies as
// CategoryGeneric. Integrations that want a different default category, or
// want to consult vendor codes the tables cannot see, supply their own.
//
// Example:
//
//	c := sqlerr.New(extracter, sqlerr.WithFallback(func(sig sqlerr.Signal) sqlerr.ClassifiedError {
//	    if sig.VendorCode == 1205 {
//	        return sqlerr.NewClassified(sqlerr.CategoryPessimisticLock, sig)
//	    }
//	    return sqlerr.NewClassified(sqlerr.CategoryGeneric, sig)
//	}))
func WithFallback(fn FallbackFunc) Option {
	return func(c *Classifier) {
		if fn != nil {
			c.fallback = fn
		}
	}
}

// WithExactCode adds an exact-code rule mapping one full SQLSTATE to a
// category. Vendor adapters use this for states the curated set does not
// cover, such as PostgreSQL's deadlock_detected ("40P01"). The curated
// exact codes always win over codes added here.
//
// Mapping a state to CategoryQueryTimeout routes it through the
// QueryTimeoutError path, the same as the curated cancellation codes.
func WithExactCode(state string, cat Category) Option {
	return func(c *Classifier) {
		if c.extra == nil {
			c.extra = make(map[string]Category)
		}
		c.extra[state] = cat
	}
}
