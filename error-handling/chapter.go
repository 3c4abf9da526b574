package errorhandling

import (
	"github.com/marcodamonte/chapters/chapter"
)

// Files names the files Run touches. Relative paths resolve against the
// working directory.
type Files struct {
	Data     string
	Username string
}

// Run walks through the chapter and then fails on purpose: it returns a
// *CLIError so the program's exit status shows how a top-level error ends a
// process.
func Run(p *chapter.Printer, files Files) error {
	p.Section("Open or create — branch on the error kind")
	if name, err := touch(files.Data); err != nil {
		p.Printf("Problem opening the file: %v\n", err)
	} else {
		p.Printf("Successfully opened file: %s\n", name)
	}

	p.Section("Optional value — comma-ok on a pointer")
	x := 5
	if v, ok := OptionalValue(&x); ok {
		p.Printf("Value is %d\n", v)
	} else {
		p.Println("Value is None")
	}
	if _, ok := OptionalValue(nil); !ok {
		p.Println("  nil pointer → no value")
	}

	p.Section("Propagation — return early, wrap with %w")
	if username, err := ReadUsername(files.Username); err != nil {
		p.Printf("Failed to read username: %v\n", err)
	} else {
		p.Printf("Username: %s\n", username)
	}

	p.Section("Sentinel errors — Divide")
	for _, b := range []int{2, 0} {
		if v, err := Divide(10, b); err != nil {
			p.Printf("  Divide(10, %d) → %s\n", b, describe(err))
		} else {
			p.Printf("  Divide(10, %d) → %d\n", b, v)
		}
	}

	p.Section("Conversion — any I/O error becomes a *CLIError")
	contents, err := ReadFile(files.Data)
	if err != nil {
		return FromIO(err)
	}
	p.Printf("File contents: %s\n", contents)

	return NewCLIError("Failed to parse command line arguments")
}
