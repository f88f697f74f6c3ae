package rational_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvlexact/rational"
)

// ExampleRat shows that arithmetic never rounds: 1/3 + 1/6 is exactly 1/2.
func ExampleRat() {
	a := rational.MustNew(1, 3)
	b := rational.MustNew(1, 6)
	sum := a.Add(b)
	q, err := sum.Div(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum, q)
	// Output:
	// 1/2 3
}

// ExampleRat_Decimal prints terminating and recurring expansions exactly.
func ExampleRat_Decimal() {
	for _, s := range []string{"1/8", "1/6", "-22/7"} {
		fmt.Println(rational.MustParse(s).Decimal())
	}
	// Output:
	// 0.125
	// 0.1(6)
	// -3.(142857)
}

// ExampleRat_DecimalN truncates for display and reports the loss.
func ExampleRat_DecimalN() {
	text, exact := rational.MustNew(2, 3).DecimalN(4)
	fmt.Println(text, exact)
	// Output:
	// 0.6666 false
}

// ExampleParse rejects text that hides a truncation.
func ExampleParse() {
	r, err := rational.Parse("0.(3)")
	fmt.Println(r, err)
	_, err = rational.Parse("0.333...")
	fmt.Println(err)
	// Output:
	// 1/3 <nil>
	// Parse: rational: exact conversion impossible
}

// ExampleRat_MarshalJSON shows the transport record.
func ExampleRat_MarshalJSON() {
	data, _ := json.Marshal(rational.MustNew(-10, 4))
	fmt.Println(string(data))
	// Output:
	// {"num":"-5","den":"2"}
}
