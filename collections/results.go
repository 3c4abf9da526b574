package collections

import (
	"errors"

	"github.com/marcodamonte/chapters/chapter"
)

var errDivisionByZero = errors.New("Division by zero")

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	return a / b, nil
}

// lookup is the comma-ok form of an optional value.
func lookup(m map[string]int, key string) (int, bool) {
	v, ok := m[key]
	return v, ok
}

func demoOptionsAndResults(p *chapter.Printer) {
	values := map[string]int{"x": 5}

	if v, ok := lookup(values, "x"); ok {
		p.Printf("x is %d\n", v)
	}
	if _, ok := lookup(values, "y"); !ok {
		p.Println("  y is absent")
	}

	for _, b := range []int{2, 0} {
		result, err := divide(10, b)
		if err != nil {
			p.Printf("Error: %v\n", err)
			continue
		}
		p.Printf("Result: %d\n", result)
	}
}
