package collections

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/marcodamonte/chapters/chapter"
)

func demoStrings(p *chapter.Printer) {
	// strings.Builder avoids reallocating on every append.
	var sb strings.Builder
	sb.WriteString("hello")
	sb.WriteString(", world!")
	s := sb.String()
	p.Println(s)

	// Slicing indexes bytes, not characters.
	hello := s[0:5]
	p.Println(hello)

	s1 := "Hello, "
	s2 := "world!"
	s3 := s1 + s2 // both operands stay usable
	p.Println(s3)

	s4 := fmt.Sprintf("%s %s", "Go", "is awesome!")
	p.Println(s4)

	// ── bytes vs runes ────────────────────────────────────────────────────────
	word := "añejo"
	p.Printf("  %q: len=%d bytes, %d runes\n", word, len(word), utf8.RuneCountInString(word))
}
