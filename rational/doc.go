// Package rational provides Rat, an immutable arbitrary-precision rational
// number that is always kept in lowest terms.
//
// 🚀 What is Rat?
//
//	A numerator/denominator pair of big integers with three invariants:
//	  • the denominator is strictly positive (the sign lives on the numerator)
//	  • gcd(|num|, den) == 1 after every construction and operation
//	  • zero is stored as 0/1
//
//	Rat is a value type. Every method returns a fresh value and never touches
//	its receiver or arguments, so Rats may be shared freely between goroutines.
//	The zero value Rat{} is the number 0 and is ready to use.
//
// ✨ Key features:
//   - exact arithmetic: Add, Sub, Mul, Div (ErrDivisionByZero), Neg, Abs, Inv
//   - total order: Cmp, Equal, Less, Sign
//   - exact conversions: Int64/Float64 fail with ErrPrecisionLoss instead of rounding
//   - decimal text: Parse understands "3/4", "1.25", "1e-3" and the recurring
//     notation "0.1(6)"; Decimal prints 1/6 as "0.1(6)"
//   - JSON as {"num":"…","den":"…"} so no value ever passes through float64
//
// ⚙️ Usage:
//
//	a, _ := rational.New(1, 3)
//	b := rational.FromInt(2)
//	c := a.Add(b)          // 7/3
//	q, err := c.Div(a)     // 7, nil
//	fmt.Println(c.Decimal()) // 2.(3)
//
// Performance:
//
//	Arithmetic cost grows with operand bit length; nothing is bounded.
//	Pathologically large coefficients cost time and memory, never precision.
package rational
