package basics

import (
	"fmt"
	"math"

	"github.com/marcodamonte/chapters/chapter"
)

// triple groups three differently typed values. Go has no tuple type; a
// small struct (or multiple return values) does the job.
type triple struct {
	A int32
	B float64
	C uint8
}

func (t triple) String() string {
	return fmt.Sprintf("(%d, %v, %d)", t.A, t.B, t.C)
}

func demoDataTypes(p *chapter.Printer) {
	// ── Integers ──────────────────────────────────────────────────────────────
	var a int32 = 42
	var b uint8 = 255
	p.Printf("  int32 a = %d, uint8 b = %d\n", a, b)

	// Unsigned arithmetic wraps at runtime; constant overflow is a compile error.
	b++
	p.Printf("  uint8 255 + 1 wraps to %d\n", b)

	// ── Floats ────────────────────────────────────────────────────────────────
	var x float64 = 3.14
	var y float32 = 2.71828
	p.Printf("  float64 x = %v, float32 y = %v\n", x, y)
	p.Printf("  math.MaxInt32 = %d\n", math.MaxInt32)

	// ── Booleans and runes ────────────────────────────────────────────────────
	isTrue, isFalse := true, false
	p.Printf("  bools: %t %t\n", isTrue, isFalse)

	c := 'A'
	emoji := '😀'
	p.Printf("  runes: %c (%U) %c (%U)\n", c, c, emoji, emoji)

	// ── Tuples and arrays ─────────────────────────────────────────────────────
	tuple := triple{42, 3.14, 255}
	p.Printf("Tuple: %v\n", tuple)

	arr := [5]int32{1, 2, 3, 4, 5}
	p.Printf("Array: %v\n", arr)
	p.Printf("  len(arr) = %d (part of the type: [5]int32)\n", len(arr))
}
