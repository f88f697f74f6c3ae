// SPDX-License-Identifier: MIT
// Package rational: decimal text in and out.
//
// Input grammar accepted by Parse (surrounding spaces ignored):
//
//	integer     "-12", "+7"
//	fraction    "3/4", "-10/6"            (base 10 only)
//	decimal     "1.25", ".5", "2e-3"
//	recurring   "0.(3)", "1.1(6)", "-.(142857)"
//
// Exponents are limited to |e| <= MaxDecimalExponent; "1e999999" is well formed
// but fails with ErrExponentRange.
//
// Text that announces a truncated expansion ("0.333...", "0.3…") is rejected
// with ErrPrecisionLoss: the exact value it stands for is unknowable.
//
// Output: Decimal renders finite expansions exactly and periodic ones with the
// repetend in parentheses, so 1/6 prints as "0.1(6)". DecimalN truncates to a
// fixed number of fraction digits and reports whether that was exact.

package rational

import (
	"math/big"
	"regexp"
	"strings"
)

// DefaultMaxDecimalDigits bounds the number of fraction digits Decimal will
// generate (pre-period plus period). Values whose expansion is longer are
// rendered in exact "n/d" form instead.
const DefaultMaxDecimalDigits = 1 << 12

// MaxDecimalExponent bounds |exponent| in scientific notation so Parse never
// allocates astronomically large integers on hostile input.
const MaxDecimalExponent = 1 << 16

var (
	reDecimal   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?(\d+))?$`)
	reRecurring = regexp.MustCompile(`^([+-])?(\d*)\.(\d*)\((\d+)\)$`)
	reInteger   = regexp.MustCompile(`^[+-]?\d+$`)
)

var (
	bigTen = big.NewInt(10)
	bigTwo = big.NewInt(2)
	bigFiv = big.NewInt(5)
)

// Parse converts decimal, fraction or recurring-decimal text into a Rat.
//
// Errors:
//   - ErrSyntax for malformed text.
//   - ErrDivisionByZero for a fraction with a zero denominator.
//   - ErrPrecisionLoss for text that ends in an ellipsis.
//   - ErrExponentRange for an exponent beyond ±MaxDecimalExponent.
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	case strings.HasSuffix(s, "...") || strings.HasSuffix(s, "…"):
		return Rat{}, ratErrorf(opParse, ErrPrecisionLoss)
	case strings.ContainsRune(s, '('):
		return parseRecurring(s)
	case strings.ContainsRune(s, '/'):
		return parseFraction(s)
	}

	m := reDecimal.FindStringSubmatch(s)
	if m == nil {
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	}
	if exp := strings.TrimLeft(m[4], "0"); exp != "" {
		if len(exp) > 6 || atoiSmall(exp) > MaxDecimalExponent {
			return Rat{}, ratErrorf(opParse, ErrExponentRange)
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	}

	return wrap(r), nil
}

// MustParse is like Parse but panics on error. Intended for literals in tests
// and examples.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// parseFraction handles "a/b" with base-10 integers on both sides.
func parseFraction(s string) (Rat, error) {
	numText, denText, _ := strings.Cut(s, "/")
	numText, denText = strings.TrimSpace(numText), strings.TrimSpace(denText)
	if !reInteger.MatchString(numText) || !reInteger.MatchString(denText) {
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	}
	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	}
	den, ok := new(big.Int).SetString(denText, 10)
	if !ok {
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	}
	if den.Sign() == 0 {
		return Rat{}, ratErrorf(opParse, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).SetFrac(num, den)), nil
}

// parseRecurring handles "I.A(R)": integer part I, non-repeating digits A and
// repetend R. The fraction part equals (AR − A) / (10^|A| · (10^|R| − 1)).
func parseRecurring(s string) (Rat, error) {
	m := reRecurring.FindStringSubmatch(s)
	if m == nil {
		return Rat{}, ratErrorf(opParse, ErrSyntax)
	}
	sign, intText, pre, rep := m[1], m[2], m[3], m[4]

	whole := new(big.Int)
	if intText != "" {
		whole.SetString(intText, 10)
	}
	withRep := new(big.Int)
	withRep.SetString(pre+rep, 10)
	noRep := new(big.Int)
	if pre != "" {
		noRep.SetString(pre, 10)
	}

	num := new(big.Int).Sub(withRep, noRep)
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(len(rep))), nil)
	den.Sub(den, big.NewInt(1))
	den.Mul(den, new(big.Int).Exp(bigTen, big.NewInt(int64(len(pre))), nil))

	r := new(big.Rat).SetFrac(num, den)
	r.Add(r, new(big.Rat).SetInt(whole))
	if sign == "-" {
		r.Neg(r)
	}

	return wrap(r), nil
}

// atoiSmall parses a short run of ASCII digits. The caller bounds the length.
func atoiSmall(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}

	return n
}

// Decimal returns the exact decimal expansion of x. Terminating expansions are
// printed in full ("0.125"); periodic ones mark the repetend with parentheses
// ("0.1(6)", "-2.(142857)"). If the expansion needs more than
// DefaultMaxDecimalDigits fraction digits the exact "n/d" form is returned.
// The result never rounds.
func (x Rat) Decimal() string {
	v := x.val()
	if v.IsInt() {
		return v.Num().String()
	}

	num := new(big.Int).Abs(v.Num())
	den := v.Denom()
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	// Pre-period length is the larger multiplicity of 2 and 5 in den;
	// whatever is left decides whether the expansion terminates.
	c2, rest := multiplicity(den, bigTwo)
	c5, rest := multiplicity(rest, bigFiv)
	pre := c2
	if c5 > pre {
		pre = c5
	}
	if pre > DefaultMaxDecimalDigits {
		return x.String()
	}

	var b strings.Builder
	if v.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(whole.String())
	b.WriteByte('.')

	digit := new(big.Int)
	for i := 0; i < pre; i++ {
		rem.Mul(rem, bigTen)
		digit.QuoRem(rem, den, rem)
		b.WriteByte(byte('0' + digit.Int64()))
	}
	if rest.Cmp(big.NewInt(1)) == 0 {
		return b.String()
	}

	// Purely periodic from here: the remainder returns to its value at the
	// start of the period.
	start := new(big.Int).Set(rem)
	var period strings.Builder
	for n := 0; ; n++ {
		if pre+n >= DefaultMaxDecimalDigits {
			return x.String()
		}
		rem.Mul(rem, bigTen)
		digit.QuoRem(rem, den, rem)
		period.WriteByte(byte('0' + digit.Int64()))
		if rem.Cmp(start) == 0 {
			break
		}
	}
	b.WriteByte('(')
	b.WriteString(period.String())
	b.WriteByte(')')

	return b.String()
}

// DecimalN returns x truncated toward zero to at most digits fraction digits,
// and whether that text is exactly x. Trailing digits stop as soon as the
// expansion terminates, so 1/4 with digits=6 yields ("0.25", true) and 1/3
// yields ("0.333333", false). Negative digits are treated as 0.
func (x Rat) DecimalN(digits int) (string, bool) {
	if digits < 0 {
		digits = 0
	}
	v := x.val()
	if v.IsInt() {
		return v.Num().String(), true
	}

	num := new(big.Int).Abs(v.Num())
	den := v.Denom()
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	var frac strings.Builder
	digit := new(big.Int)
	nonZero := whole.Sign() != 0
	for i := 0; i < digits && rem.Sign() != 0; i++ {
		rem.Mul(rem, bigTen)
		digit.QuoRem(rem, den, rem)
		d := digit.Int64()
		if d != 0 {
			nonZero = true
		}
		frac.WriteByte(byte('0' + d))
	}
	exact := rem.Sign() == 0

	var b strings.Builder
	if v.Sign() < 0 && nonZero {
		b.WriteByte('-')
	}
	b.WriteString(whole.String())
	if frac.Len() > 0 && nonZero {
		b.WriteByte('.')
		b.WriteString(frac.String())
	}

	return b.String(), exact
}

// multiplicity returns how many times p divides n, and n with those factors
// removed. n is not modified.
func multiplicity(n, p *big.Int) (int, *big.Int) {
	rest := new(big.Int).Set(n)
	q, r := new(big.Int), new(big.Int)
	count := 0
	for {
		q.QuoRem(rest, p, r)
		if r.Sign() != 0 {
			return count, rest
		}
		rest.Set(q)
		count++
	}
}
