package codegen

import (
	"fmt"

	"github.com/marcodamonte/chapters/chapter"
)

// funcTable holds named functions defined at runtime.
type funcTable map[string]func(*chapter.Printer)

func (t funcTable) define(name string, body func(*chapter.Printer)) {
	t[name] = body
}

func (t funcTable) call(p *chapter.Printer, name string) error {
	fn, ok := t[name]
	if !ok {
		return fmt.Errorf("no function named %q", name)
	}
	fn(p)
	return nil
}

// Factorial computes n! recursively. 0! is 1. Results above 20! overflow
// uint64.
func Factorial(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return n * Factorial(n-1)
}

// FactorialIter is Factorial without the call stack.
func FactorialIter(n uint64) uint64 {
	acc := uint64(1)
	for i := uint64(2); i <= n; i++ {
		acc *= i
	}
	return acc
}
