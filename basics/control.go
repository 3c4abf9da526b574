package basics

import "github.com/marcodamonte/chapters/chapter"

func demoControlFlow(p *chapter.Printer) {
	// ── if / else if / else ───────────────────────────────────────────────────
	p.Println(sign(5))

	// ── for: counting loop ────────────────────────────────────────────────────
	for i := range 5 {
		p.Println(i)
	}

	// ── for: while-style loop ─────────────────────────────────────────────────
	y := 0
	for y < 5 {
		p.Println(y)
		y++
	}

	// ── for: infinite loop, left with break ───────────────────────────────────
	n := 0
	for {
		n++
		if n == 3 {
			break
		}
	}
	p.Printf("  infinite loop stopped after %d iterations\n", n)

	// ── switch: no fallthrough, several values per case ───────────────────────
	p.Println(classify(4))
}

func sign(x int) string {
	if x > 0 {
		return "x is positive"
	} else if x < 0 {
		return "x is negative"
	} else {
		return "x is zero"
	}
}

// classify maps a number to a label; case 3, 4, 5 matches any of the three.
func classify(num int) string {
	switch num {
	case 1:
		return "One"
	case 2:
		return "Two"
	case 3, 4, 5:
		return "Three, four, or five"
	default:
		return "Something else"
	}
}
