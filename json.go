package sqlerr

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON representation of a classified failure.
// The cause chain and statement text are intentionally excluded: both may
// contain internal details (queries, identifiers, file paths) that should
// not leak through API responses.
type ErrorResponse struct {
	// Category is the failure category the error was classified as.
	Category string `json:"category"`

	// Message is the human-readable error message.
	Message string `json:"message,omitempty"`

	// Classification indicates whether the failure is transient or permanent.
	Classification string `json:"classification"`

	// ConstraintName names the violated constraint, when recovered.
	// Omitted from JSON if empty.
	ConstraintName string `json:"constraint_name,omitempty"`

	// VendorCode is the vendor-specific numeric error code.
	// Omitted from JSON if zero.
	VendorCode int `json:"vendor_code,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON
// serialization. Returns nil if err is nil.
//
// For ClassifiedError values the category, message, classification,
// constraint name, and vendor code are extracted. A *QueryTimeoutError
// renders as CategoryQueryTimeout. Any other error renders as
// CategoryGeneric with the error text as message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var classified ClassifiedError
	if As(err, &classified) {
		return &ErrorResponse{
			Category:       string(classified.Category()),
			Message:        classified.Message(),
			Classification: string(classified.Classification()),
			ConstraintName: classified.ConstraintName(),
			VendorCode:     classified.VendorCode(),
		}
	}

	var timeout *QueryTimeoutError
	if As(err, &timeout) {
		return &ErrorResponse{
			Category:       string(CategoryQueryTimeout),
			Message:        timeout.Message,
			Classification: string(classificationFor(CategoryQueryTimeout)),
		}
	}

	return &ErrorResponse{
		Category:       string(CategoryGeneric),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}

// MarshalJSON implements json.Marshaler for the classified error value, so
// results of Classify can be marshaled directly with json.Marshal.
//
// Example:
//
//	classified, _ := c.Classify(sig)
//	data, _ := json.Marshal(classified)
//	// {"category":"INTEGRITY_VIOLATION","message":"...","classification":"PERMANENT","constraint_name":"..."}
func (e *sqlError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&ErrorResponse{
		Category:       string(e.category),
		Message:        e.message,
		Classification: string(e.classification),
		ConstraintName: e.constraintName,
		VendorCode:     e.vendorCode,
	})
}
