package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"reflect"
	"text/template"

	"github.com/marcodamonte/chapters/chapter"
)

// Derive describes the method Generate writes for a type.
type Derive struct {
	Package string
	Type    string
	Method  string
}

var deriveTmpl = template.Must(template.New("derive").Parse(`// Code generated by codegen. DO NOT EDIT.

package {{.Package}}

import "fmt"

func ({{.Type}}) {{.Method}}() {
	fmt.Println("Hello from {{.Type}}!")
}
`))

// ErrBadIdentifier is returned by Generate for names that are not valid Go
// identifiers.
var ErrBadIdentifier = errors.New("not a Go identifier")

// Generate renders the method described by d as gofmt'd Go source, the way
// a go:generate tool would before compilation.
func Generate(d Derive) ([]byte, error) {
	for _, name := range []string{d.Package, d.Type, d.Method} {
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("%q: %w", name, ErrBadIdentifier)
		}
	}
	var buf bytes.Buffer
	if err := deriveTmpl.Execute(&buf, d); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// MyStruct gets its greeting from Hello, which reads the type name through
// reflection instead of having it pasted in by a generator.
type MyStruct struct{}

func (MyStruct) MyMethod(p *chapter.Printer) {
	p.Println(Hello[MyStruct]())
}

// Hello returns "Hello from <T>!" for any named type T.
func Hello[T any]() string {
	return fmt.Sprintf("Hello from %s!", reflect.TypeFor[T]().Name())
}
