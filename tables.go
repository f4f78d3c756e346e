package sqlerr

// The category tables below are the curated, read-only heart of the
// classifier. They are built once at package initialization and never
// mutated afterwards, so concurrent lookups need no locking.

// classTable is an immutable membership test over SQLSTATE class codes.
type classTable map[string]struct{}

func newClassTable(codes ...string) classTable {
	t := make(classTable, len(codes))
	for _, c := range codes {
		t[c] = struct{}{}
	}
	return t
}

func (t classTable) contains(classCode string) bool {
	_, ok := t[classCode]
	return ok
}

var (
	// sqlGrammarClasses covers invalid statements: dynamic SQL errors (07),
	// syntax errors and access rule violations (37, 42, 65, S0), and
	// case-not-found (20). 65 and S0 are vendor class codes (Oracle, ODBC).
	sqlGrammarClasses = newClassTable("07", "37", "42", "65", "S0", "20")

	// dataClasses covers data exceptions (22), cardinality violations (21),
	// and no-data conditions (02).
	dataClasses = newClassTable("22", "21", "02")

	// integrityViolationClasses covers integrity constraint violations (23),
	// triggered data change violations (27), and with-check-option
	// violations (44).
	integrityViolationClasses = newClassTable("23", "27", "44")

	// connectionClasses covers connection exceptions (08).
	connectionClasses = newClassTable("08")
)

// classRules is the class-code lookup in its fixed priority order.
// The order (grammar, integrity, connection, data) is a stable, tested
// contract: the tables are curated to be disjoint, but should they ever
// overlap, the first matching table wins rather than reordering meaning
// silently.
var classRules = []struct {
	table    classTable
	category Category
}{
	{sqlGrammarClasses, CategorySQLGrammar},
	{integrityViolationClasses, CategoryIntegrityViolation},
	{connectionClasses, CategoryConnection},
	{dataClasses, CategoryData},
}

// exactRules maps full SQLSTATEs to categories for vendor-specific cases
// a class code alone cannot distinguish. Exact rules take precedence over
// the class tables.
var exactRules = map[string]Category{
	// Serialization failure (standard).
	"40001": CategoryLockAcquisition,
	// Oracle deadlock detection.
	"61000": CategoryLockAcquisition,
	// Derby: a lock could not be obtained within the time requested.
	"40XL1": CategoryPessimisticLock,
	"40XL2": CategoryPessimisticLock,
	// MySQL: query execution was interrupted.
	"70100": CategoryQueryTimeout,
	// Oracle: user requested cancel of current operation.
	"72000": CategoryQueryTimeout,
}
