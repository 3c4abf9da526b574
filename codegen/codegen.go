// Package codegen is chapter 9: metaprogramming the Go way.
//
// Go has no macros. The same jobs are done with ordinary functions,
// function values, variadic generics, reflection, and source generation run
// ahead of the build (go generate). Each demo below pairs one of those tools
// with the problem it solves.
package codegen

import (
	"fmt"

	"github.com/marcodamonte/chapters/chapter"
)

// Run prints every chapter 9 demo to p.
func Run(p *chapter.Printer) error {
	p.Section("Labelled values — expression text next to its value")
	x := 42
	show(p, "x", x)
	show(p, "x + 2", x+2)
	show(p, `"hello"`, "hello")

	p.Section("Function values — define by name, call later")
	fns := funcTable{}
	fns.define("hello_world", func(p *chapter.Printer) { p.Println("Hello, world!") })
	if err := fns.call(p, "hello_world"); err != nil {
		return err
	}
	if err := fns.call(p, "goodbye"); err != nil {
		p.Printf("  %v\n", err)
	}

	p.Section("Recursion — factorial with a base case")
	p.Printf("Factorial of 5 is %d\n", Factorial(5))
	p.Printf("  iterative: %d\n", FactorialIter(5))

	p.Section("Variadic builder — VecOf[T](xs ...T)")
	p.Println(VecOf(1, 2, 3, 4, 5))

	p.Section("Derive — generated source and reflection")
	src, err := Generate(Derive{Package: "demo", Type: "MyStruct", Method: "MyMethod"})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	p.Printf("%s", src)
	var s MyStruct
	s.MyMethod(p)
	return nil
}

// show prints label = value with Go-syntax formatting. The label is passed
// explicitly; Go cannot turn an expression into its source text at runtime.
func show(p *chapter.Printer, label string, v any) {
	p.Printf("%s = %#v\n", label, v)
}

// VecOf collects its arguments into a new slice.
func VecOf[T any](xs ...T) []T {
	out := make([]T, 0, len(xs))
	return append(out, xs...)
}
