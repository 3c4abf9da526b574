package basics

import "github.com/marcodamonte/chapters/chapter"

// demoVariables contrasts constants (never reassignable) with variables
// (always reassignable) and shows shadowing in nested scopes.
func demoVariables(p *chapter.Printer) {
	// const is the closest Go gets to an immutable binding.
	const x = 5
	p.Printf("The value of x is: %d\n", x)

	y := 10
	p.Printf("The value of y is: %d\n", y)
	y = 15
	p.Printf("The value of y is now: %d\n", y)

	shadowing(p, x)
}

// shadowing redeclares x in two nested blocks, each derived from the outer
// one, and returns the innermost value.
//
// := declares a new variable in the inner scope; the outer x is untouched
// once the block ends.
func shadowing(p *chapter.Printer, start int) int {
	x := start
	{
		x := x + 1
		p.Printf("The value of x is now: %d\n", x)
		{
			x := x * 2
			p.Printf("The value of x is now: %d\n", x)
			return x
		}
	}
}
