package rational_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlexact/rational"
)

// benchmarkHarmonic sums 1/1 + 1/2 + … + 1/n; denominators grow quickly,
// which exercises the gcd normalization on every step.
func benchmarkHarmonic(b *testing.B, n int) {
	terms := make([]rational.Rat, n)
	for i := range terms {
		terms[i] = rational.MustNew(1, int64(i+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rational.Sum(terms...)
	}
}

func BenchmarkHarmonic_100(b *testing.B)  { benchmarkHarmonic(b, 100) }
func BenchmarkHarmonic_1000(b *testing.B) { benchmarkHarmonic(b, 1000) }

// BenchmarkMulDiv_Wide multiplies and divides 512-bit operands.
func BenchmarkMulDiv_Wide(b *testing.B) {
	num := new(big.Int).Lsh(big.NewInt(1), 512)
	num.Add(num, big.NewInt(12345))
	x, _ := rational.FromBig(num, big.NewInt(7))
	y, _ := rational.FromBig(big.NewInt(3), num)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := x.Mul(y)
		if _, err := p.Div(y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecimal_Recurring renders a long repetend.
func BenchmarkDecimal_Recurring(b *testing.B) {
	x := rational.MustNew(1, 97)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Decimal()
	}
}
