package chapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NotFound is printed when the selected number has no chapter.
const NotFound = "Chapter not found"

// Chapter is one independently runnable demo.
type Chapter struct {
	Number uint32
	Title  string
	Run    func(p *Printer) error
}

// Registry maps chapter numbers to chapters.
type Registry map[uint32]Chapter

// NewRegistry builds a Registry from chs. A duplicated number is a
// programming error and panics.
func NewRegistry(chs ...Chapter) Registry {
	r := make(Registry, len(chs))
	for _, c := range chs {
		if _, dup := r[c.Number]; dup {
			panic(fmt.Sprintf("chapter %d registered twice", c.Number))
		}
		r[c.Number] = c
	}
	return r
}

// Lookup returns the chapter registered under n.
func (r Registry) Lookup(n uint32) (Chapter, bool) {
	c, ok := r[n]
	return c, ok
}

// ErrNoInput is returned by ReadSelection when stdin ends before a line.
var ErrNoInput = errors.New("no chapter number given")

// SelectionError reports a line that is not an unsigned chapter number.
type SelectionError struct {
	Input string
	Err   error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("please type a number: %q: %v", e.Input, e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// ReadSelection reads one line from r and parses it as an unsigned 32-bit
// chapter number. Surrounding whitespace and a single leading '+' are
// ignored.
func ReadSelection(r io.Reader) (uint32, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		}
		return 0, fmt.Errorf("read selection: %w", err)
	}
	input := strings.TrimSpace(line)
	n, err := strconv.ParseUint(strings.TrimPrefix(input, "+"), 10, 32)
	if err != nil {
		return 0, &SelectionError{Input: input, Err: err}
	}
	return uint32(n), nil
}

// Dispatch runs chapter n. Unknown numbers print NotFound and are not an
// error.
func Dispatch(r Registry, n uint32, p *Printer) error {
	c, ok := r.Lookup(n)
	if !ok {
		p.Println(NotFound)
		return nil
	}
	if err := c.Run(p); err != nil {
		return fmt.Errorf("chapter %d: %w", n, err)
	}
	return nil
}
