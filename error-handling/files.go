package errorhandling

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// OpenFile opens name, creating it when it does not exist. Any other failure
// (permissions, a directory in the way) is returned as is.
func OpenFile(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return os.Create(name)
}

// touch opens name through OpenFile and closes it again, reporting the
// close error when the open succeeded.
func touch(name string) (opened string, err error) {
	f, err := OpenFile(name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return f.Name(), nil
}

// ReadUsername reads the whole username file. Each step returns early on
// failure. An open failure is returned as the *fs.PathError, which already
// names the operation and path.
func ReadUsername(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// ReadFile is ReadUsername for an arbitrary path, written with the stdlib
// shortcut.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
