// Package revisited is chapter 5: chapter 2's rules again, plus the
// patterns that come up once values move through functions and slices.
package revisited

import "github.com/marcodamonte/chapters/chapter"

// Run prints every chapter 5 demo to p.
func Run(p *chapter.Printer) error {
	p.Section("Rules — who keeps a value alive")
	demoRules(p)

	p.Section("Pointers — one writer, many readers")
	demoPointers(p)

	p.Section("Lifetimes — returning one of two inputs")
	demoLifetimes(p)

	p.Section("Patterns — passing, returning, aliasing, optional, result")
	demoPatterns(p)
	return nil
}

// demoRules restates the three rules in GC terms:
//
//  1. a value is kept alive by any reachable reference, not by one owner;
//  2. any number of variables may refer to it at once;
//  3. it is collected some time after the last reference disappears.
func demoRules(p *chapter.Printer) {
	s1 := []byte("hello")
	s2 := s1 // both headers point at the same backing array
	s2[0] = 'j'
	p.Printf("  s1=%s s2=%s (shared backing array)\n", s1, s2)

	s3 := append([]byte(nil), s1...) // explicit copy breaks the sharing
	s3[0] = 'h'
	p.Printf("  s1=%s s3=%s (independent copy)\n", s1, s3)
}

func demoPointers(p *chapter.Printer) {
	s1 := "hello"
	n := calculateLength(&s1)
	p.Printf("The length of '%s' is %d.\n", s1, n)

	s2 := "world"
	change(&s2)
	p.Printf("s2 is now: %s\n", s2)

	// Any number of readers may hold a pointer at the same time. Nothing
	// stops a writer from joining them; with goroutines that is a data race.
	r1, r2 := &s2, &s2
	p.Printf("%s and %s\n", *r1, *r2)
}

func calculateLength(s *string) int {
	return len(*s)
}

func change(someString *string) {
	*someString += ", changed!"
}

func demoLifetimes(p *chapter.Printer) {
	result := longest("abcd", "xyz")
	p.Printf("The longest string is '%s'\n", result)
}

func longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}
