// Package ownership is chapter 2: how Go's value semantics, pointers and
// garbage collector cover the ground that single-owner languages enforce
// at compile time.
//
// Go has no moves and no borrow checker. Assignment copies the value (for a
// string or slice, the small header); sharing is explicit through pointers;
// the GC decides when memory is freed and escape analysis decides where it
// lives.
package ownership

import "github.com/marcodamonte/chapters/chapter"

// Run prints every chapter 2 demo to p.
func Run(p *chapter.Printer) error {
	p.Section("Assignment — copies, not moves")
	demoAssignment(p)

	p.Section("Pointers — read-only and mutating access")
	demoPointers(p)

	p.Section("Lifetimes — the GC keeps values alive")
	demoLifetimes(p)
	return nil
}

func demoAssignment(p *chapter.Printer) {
	s1 := "hello"
	s2 := s1 // copies the string header; both stay valid
	p.Printf("  s1=%q s2=%q (both usable after assignment)\n", s1, s2)

	s3 := "world"
	takesOwnership(p, s3)
	p.Printf("  s3=%q still usable after the call\n", s3)
}

// takesOwnership receives its own copy of the string header. Strings are
// immutable, so sharing the bytes underneath is safe.
func takesOwnership(p *chapter.Printer, someString string) {
	p.Println(someString)
}

func demoPointers(p *chapter.Printer) {
	s1 := "hello"
	n := calculateLength(&s1)
	p.Printf("The length of '%s' is %d.\n", s1, n)

	s2 := "world"
	change(&s2)
	p.Printf("s2 is now: %s\n", s2)
}

func calculateLength(s *string) int {
	return len(*s)
}

// change writes through the pointer, so the caller sees the new value.
func change(someString *string) {
	*someString += ", changed!"
}

func demoLifetimes(p *chapter.Printer) {
	string1 := "abcd"
	string2 := "xyz"

	result := longest(string1, string2)
	p.Printf("The longest string is '%s'\n", result)

	// Returning the address of a local is fine: escape analysis moves it to
	// the heap and the GC frees it once nothing points to it.
	v := newCounter()
	*v += 2
	p.Printf("  *newCounter() + 2 = %d (local escaped to heap)\n", *v)
}

// longest returns x when it is strictly longer than y, y otherwise.
func longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

func newCounter() *int {
	n := 40
	return &n
}
