package collections

import "github.com/marcodamonte/chapters/chapter"

// pop removes and returns the last element. ok is false on an empty slice.
func pop[T any](s []T) (rest []T, last T, ok bool) {
	if len(s) == 0 {
		return s, last, false
	}
	return s[:len(s)-1], s[len(s)-1], true
}

func demoSlices(p *chapter.Printer) {
	var v []int // nil slice: append allocates on first use
	v = append(v, 1)
	v = append(v, 2)
	v = append(v, 3)

	p.Printf("The first element is: %d\n", v[0])
	p.Printf("The last element is: %d\n", v[len(v)-1])

	for _, i := range v {
		p.Println(i)
	}

	v, last, ok := pop(v)
	if ok {
		p.Printf("Removed the last element: %d\n", last)
	}
	p.Printf("  remaining: %v (len=%d cap=%d)\n", v, len(v), cap(v))

	v2 := []int{4, 5, 6}
	for _, i := range v2 {
		p.Println(i)
	}
}
