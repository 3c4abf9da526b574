// Package basics is chapter 1: bindings, primitive types and control flow.
package basics

import "github.com/marcodamonte/chapters/chapter"

// Run prints every chapter 1 demo to p.
func Run(p *chapter.Printer) error {
	p.Section("Variables — const, var, reassignment, shadowing")
	demoVariables(p)

	p.Section("Data types — integers, floats, bool, rune, tuples, arrays")
	demoDataTypes(p)

	p.Section("Control flow — if/else, for, switch")
	demoControlFlow(p)
	return nil
}
