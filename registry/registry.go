// Package registry maps format names to parsers and output converters.
//
// Names are matched without regard to case. Every implementation has one
// primary name and any number of aliases; aliases double as file
// extensions, so "md" finds the Markdown parser and "tex" the LaTeX
// converter.
package registry // import "akhil.cc/markconv/registry"

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"akhil.cc/markconv/ast"
	"akhil.cc/markconv/gen/html"
	"akhil.cc/markconv/gen/latex"
	"akhil.cc/markconv/gen/typst"
	"akhil.cc/markconv/parser"
	"golang.org/x/text/cases"
)

var (
	// ErrFormatNotFound is returned when no implementation is registered
	// under a name.
	ErrFormatNotFound = errors.New("format not found")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("format already registered")
)

// A Parser turns source text into a document tree.
type Parser interface {
	Parse(content string) (*ast.Document, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(content string) (*ast.Document, error)

func (f ParserFunc) Parse(content string) (*ast.Document, error) { return f(content) }

// A ConverterFunc renders a document tree as output text.
type ConverterFunc func(doc *ast.Document) string

// Format describes one registered implementation.
type Format struct {
	Name    string
	Aliases []string
}

type table[T any] struct {
	impl    map[string]T        // by primary name
	names   map[string]string   // folded name or alias -> primary name
	aliases map[string][]string // primary name -> aliases
}

func newTable[T any]() table[T] {
	return table[T]{
		impl:    make(map[string]T),
		names:   make(map[string]string),
		aliases: make(map[string][]string),
	}
}

func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func (t table[T]) register(v T, names []string) error {
	if len(names) == 0 {
		return errors.New("registry: no name given")
	}
	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = fold(n)
		if folded[i] == "" {
			return errors.New("registry: empty name")
		}
		if _, ok := t.names[folded[i]]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicate, n)
		}
	}
	primary := folded[0]
	for _, n := range folded {
		t.names[n] = primary
	}
	t.impl[primary] = v
	t.aliases[primary] = folded[1:]
	return nil
}

func (t table[T]) lookup(name string) (T, error) {
	if p, ok := t.names[fold(name)]; ok {
		return t.impl[p], nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrFormatNotFound, name)
}

func (t table[T]) formats() []Format {
	fs := make([]Format, 0, len(t.impl))
	for name := range t.impl {
		fs = append(fs, Format{Name: name, Aliases: append([]string(nil), t.aliases[name]...)})
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i].Name < fs[j].Name })
	return fs
}

// Registry holds the known parsers and converters. A Registry must not be
// modified while it is being read by other goroutines.
type Registry struct {
	parsers    table[Parser]
	converters table[ConverterFunc]
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		parsers:    newTable[Parser](),
		converters: newTable[ConverterFunc](),
	}
}

// Default returns a registry holding the Markdown parser and the LaTeX,
// Typst and HTML converters.
func Default() *Registry {
	r := New()
	p := parser.New()
	must(r.RegisterParser(ParserFunc(func(s string) (*ast.Document, error) {
		if s != "" && !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		return p.Parse(s)
	}), "markdown", "md"))
	must(r.RegisterConverter(latex.Convert, "latex", "tex"))
	must(r.RegisterConverter(typst.Convert, "typst", "typ"))
	must(r.RegisterConverter(html.Convert, "html", "htm"))
	return r
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// RegisterParser adds p under the given names. The first name is the
// primary one; the rest are aliases.
func (r *Registry) RegisterParser(p Parser, names ...string) error {
	return r.parsers.register(p, names)
}

// RegisterConverter adds f under the given names. The first name is the
// primary one; the rest are aliases.
func (r *Registry) RegisterConverter(f ConverterFunc, names ...string) error {
	return r.converters.register(f, names)
}

// Parser returns the parser registered under name.
func (r *Registry) Parser(name string) (Parser, error) { return r.parsers.lookup(name) }

// Converter returns the converter registered under name.
func (r *Registry) Converter(name string) (ConverterFunc, error) {
	return r.converters.lookup(name)
}

// Parsers lists the registered parsers sorted by primary name.
func (r *Registry) Parsers() []Format { return r.parsers.formats() }

// Converters lists the registered converters sorted by primary name.
func (r *Registry) Converters() []Format { return r.converters.formats() }

// Convert parses content in the from format and renders it in the to
// format. Both names are looked up before anything is parsed.
func (r *Registry) Convert(content, from, to string) (string, error) {
	p, err := r.Parser(from)
	if err != nil {
		return "", err
	}
	conv, err := r.Converter(to)
	if err != nil {
		return "", err
	}
	doc, err := p.Parse(content)
	if err != nil {
		return "", err
	}
	return conv(doc), nil
}
