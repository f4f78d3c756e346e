package sqlerr_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/sqlerr"
)

// BenchmarkClassify_ClassCode measures the common path: a class-code table
// hit. Classification should stay well under a microsecond.
func BenchmarkClassify_ClassCode(b *testing.B) {
	c := sqlerr.New(sqlerr.NopExtracter{})
	sig := sqlerr.Signal{
		SQLState:  "42000",
		Message:   "syntax error",
		Statement: "SELETC 1",
		Cause:     stderrors.New("driver error"),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(sig)
	}
}

func BenchmarkClassify_ExactCode(b *testing.B) {
	c := sqlerr.New(sqlerr.NopExtracter{})
	sig := sqlerr.Signal{
		SQLState: "40001",
		Message:  "serialization failure",
		Cause:    stderrors.New("driver error"),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(sig)
	}
}

func BenchmarkClassify_Fallback(b *testing.B) {
	c := sqlerr.New(sqlerr.NopExtracter{})
	sig := sqlerr.Signal{
		Message: "mystery failure",
		Cause:   stderrors.New("driver error"),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(sig)
	}
}

func BenchmarkClassify_IntegrityViolation(b *testing.B) {
	extracter := sqlerr.ExtracterFunc(func(error) string {
		return "FK_ORDER_CUSTOMER"
	})
	c := sqlerr.New(extracter)
	sig := sqlerr.Signal{
		SQLState: "23503",
		Message:  "foreign key violated",
		Cause:    stderrors.New("driver error"),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Classify(sig)
	}
}

func BenchmarkClassify_Parallel(b *testing.B) {
	c := sqlerr.New(sqlerr.NopExtracter{})
	sig := sqlerr.Signal{
		SQLState: "23505",
		Message:  "duplicate key",
		Cause:    stderrors.New("driver error"),
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = c.Classify(sig)
		}
	})
}

func BenchmarkGetCategory(b *testing.B) {
	c := sqlerr.New(sqlerr.NopExtracter{})
	classified, _ := c.Classify(sqlerr.Signal{
		SQLState: "08006",
		Cause:    stderrors.New("driver error"),
	})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sqlerr.GetCategory(classified)
	}
}

func BenchmarkToJSON(b *testing.B) {
	c := sqlerr.New(sqlerr.NopExtracter{})
	classified, _ := c.Classify(sqlerr.Signal{
		SQLState: "22001",
		Message:  "value too long",
		Cause:    stderrors.New("driver error"),
	})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(sqlerr.ToJSON(classified))
	}
}
