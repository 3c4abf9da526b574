package revisited

import (
	"errors"

	"github.com/marcodamonte/chapters/chapter"
)

var errDivisionByZero = errors.New("Division by zero")

func demoPatterns(p *chapter.Printer) {
	// ── Passing a value in ────────────────────────────────────────────────────
	s := "hello"
	takesOwnership(p, s)

	// ── Getting a value back ──────────────────────────────────────────────────
	s = givesOwnership()
	p.Println(s)

	// ── Pointer into a slice, then append ─────────────────────────────────────
	first, grown := pointerThenAppend([]int{1, 2, 3})
	p.Printf("The first element is: %d\n", *first)
	p.Printf("  after append: *first=%d v[0]=%d same element: %t\n",
		*first, grown[0], first == &grown[0])

	// ── Optional data ─────────────────────────────────────────────────────────
	var x *string // nil: no value
	if x != nil {
		p.Println(*x)
	} else {
		p.Println("  x is nil, nothing to print")
	}

	// ── Result-style return ───────────────────────────────────────────────────
	if v, err := divide(10, 2); err != nil {
		p.Printf("Error: %v\n", err)
	} else {
		p.Printf("Result: %d\n", v)
	}
}

func takesOwnership(p *chapter.Printer, someString string) {
	p.Println(someString)
}

func givesOwnership() string {
	someString := "yours"
	return someString
}

// pointerThenAppend takes the address of v[0] and then appends to a full
// slice. append reallocates, so the returned pointer still refers to the
// old backing array while the grown slice lives in a new one. Both stay
// valid; they just stop being the same element.
func pointerThenAppend(v []int) (*int, []int) {
	v = v[:len(v):len(v)] // cap == len forces reallocation on append
	first := &v[0]
	v = append(v, 4)
	v[0] = 100
	return first, v
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	return a / b, nil
}
