package errorhandling

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcodamonte/chapters/chapter"
)

func TestDivide(t *testing.T) {
	t.Parallel()

	if v, err := Divide(10, 2); err != nil || v != 5 {
		t.Errorf("Divide(10, 2) = %d, %v; want 5, nil", v, err)
	}
	_, err := Divide(10, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Divide(10, 0) error = %v; want ErrDivisionByZero", err)
	}
	if err.Error() != "Division by zero" {
		t.Errorf("message = %q; want %q", err.Error(), "Division by zero")
	}
}

func TestCLIError(t *testing.T) {
	t.Parallel()

	lit := NewCLIError("Failed to parse command line arguments")
	if got, want := lit.Error(), "CLI Error: Failed to parse command line arguments"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
	if lit.Unwrap() != nil {
		t.Error("literal CLIError unwraps to non-nil")
	}

	_, ioErr := os.Open(filepath.Join(t.TempDir(), "missing"))
	conv := FromIO(ioErr)
	var cliErr *CLIError
	if !errors.As(conv, &cliErr) {
		t.Fatalf("FromIO returned %T; want *CLIError", conv)
	}
	if !errors.Is(conv, fs.ErrNotExist) {
		t.Error("converted error lost its cause")
	}
	if cliErr.Cause != ioErr.Error() {
		t.Errorf("Cause = %q; want %q", cliErr.Cause, ioErr.Error())
	}

	if FromIO(nil) != nil {
		t.Error("FromIO(nil) != nil")
	}
	if FromIO(lit) != error(lit) {
		t.Error("FromIO rewrapped a *CLIError")
	}
}

func TestOpenFileCreatesMissing(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "file.txt")
	f, err := OpenFile(name)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	f.Close()
	if _, err := os.Stat(name); err != nil {
		t.Errorf("file not created: %v", err)
	}

	// Second call opens the existing file.
	f, err = OpenFile(name)
	if err != nil {
		t.Fatalf("OpenFile existing: %v", err)
	}
	f.Close()
}

func TestOpenFileOtherErrors(t *testing.T) {
	t.Parallel()

	// A path whose parent is a regular file fails with something other than
	// not-exist on create.
	dir := t.TempDir()
	parent := filepath.Join(dir, "plain")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(filepath.Join(parent, "child.txt")); err == nil {
		t.Error("OpenFile under a regular file succeeded")
	}
}

func TestTouch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	name := filepath.Join(dir, "file.txt")
	got, err := touch(name)
	if err != nil || got != name {
		t.Fatalf("touch = %q, %v; want %q, nil", got, err, name)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("file not created: %v", err)
	}

	parent := filepath.Join(dir, "plain")
	if err := os.WriteFile(parent, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := touch(filepath.Join(parent, "child.txt")); err == nil || got != "" {
		t.Errorf("touch under a regular file = %q, %v; want error", got, err)
	}
}

func TestRunUsernameFailureMessage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	username := filepath.Join(dir, "username.txt")
	var buf bytes.Buffer
	_ = Run(chapter.NewPrinter(&buf, chapter.ColorNever), Files{
		Data:     filepath.Join(dir, "file.txt"),
		Username: username,
	})
	want := "\nFailed to read username: open " + username + ": no such file or directory\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output missing %q\n%s", want, buf.String())
	}
}

func TestReadUsername(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "username.txt")

	_, err := ReadUsername(path)
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Op != "open" || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadUsername(missing) error = %v; want open *fs.PathError", err)
	}

	if err := os.WriteFile(path, []byte("ferris"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := ReadUsername(path); err != nil || got != "ferris" {
		t.Errorf("ReadUsername = %q, %v; want ferris", got, err)
	}
}

func TestOptionalValue(t *testing.T) {
	t.Parallel()

	x := 5
	if v, ok := OptionalValue(&x); !ok || v != 5 {
		t.Errorf("OptionalValue(&5) = %d, %t", v, ok)
	}
	if _, ok := OptionalValue(nil); ok {
		t.Error("OptionalValue(nil) ok")
	}
}

func TestRunEndsWithCLIError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := Files{
		Data:     filepath.Join(dir, "file.txt"),
		Username: filepath.Join(dir, "username.txt"),
	}
	var buf bytes.Buffer
	err := Run(chapter.NewPrinter(&buf, chapter.ColorNever), files)

	var cliErr *CLIError
	if !errors.As(err, &cliErr) || cliErr.Cause != "Failed to parse command line arguments" {
		t.Fatalf("Run error = %v; want the literal CLIError", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Successfully opened file: " + files.Data + "\n",
		"Value is 5\n",
		"Failed to read username: open " + files.Username + ": ",
		"Divide(10, 2) → 5\n",
		"Divide(10, 0) → Division by zero",
		"File contents: \n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRunPrintsUsername(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := Files{
		Data:     filepath.Join(dir, "file.txt"),
		Username: filepath.Join(dir, "username.txt"),
	}
	if err := os.WriteFile(files.Username, []byte("gopher"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(files.Data, []byte("some data"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	_ = Run(chapter.NewPrinter(&buf, chapter.ColorNever), files)
	for _, want := range []string{"Username: gopher\n", "File contents: some data\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunConvertsReadFailure(t *testing.T) {
	t.Parallel()

	// A directory can be opened but not read as a file.
	dir := t.TempDir()
	var buf bytes.Buffer
	err := Run(chapter.NewPrinter(&buf, chapter.ColorNever), Files{Data: dir, Username: filepath.Join(dir, "u")})

	var cliErr *CLIError
	if !errors.As(err, &cliErr) || cliErr.Err == nil {
		t.Fatalf("Run error = %v; want converted I/O error", err)
	}
}
