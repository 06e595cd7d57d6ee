// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package gen drives an output converter over a parsed document.
//
// A Generator renders an *ast.Document with any ast.Visitor and writes the
// result to its Stdout. The rendered text may be piped through a filter
// command, parsed according to the Bourne shell's word-splitting rules,
// whose standard output then becomes the generator's output. This is how
// a LaTeX or Typst document is handed to its compiler.
package gen // import "akhil.cc/markconv/gen"

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"akhil.cc/markconv/ast"
	sq "github.com/kballard/go-shellquote"
)

// ErrNoCommand is returned for a filter command line without words.
var ErrNoCommand = errors.New("no valid commands")

// Command holds the cancellation context and Stderr stream for an executed
// filter process.
type Command struct {
	Ctx    context.Context
	Stderr io.Writer
}

// Gen splits cmdline into words and runs it. The child reads stdin and
// writes its standard output to w and its standard error to c.Stderr.
// At least one of w and c.Stderr must be set.
func (c *Command) Gen(cmdline string, stdin io.Reader, w io.Writer) error {
	words, err := sq.Split(cmdline)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("%w: %q", ErrNoCommand, cmdline)
	}
	if w == nil && c.Stderr == nil {
		return fmt.Errorf("no output writer for command %q", cmdline)
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = stdin, w, c.Stderr
	return cmd.Run()
}

// DocumentFunc adapts a whole-document converter to ast.Visitor. Nodes
// other than a Document are rendered through their children.
type DocumentFunc func(doc *ast.Document) string

func (f DocumentFunc) ConvertDefault(n ast.Node) string {
	if d, ok := n.(*ast.Document); ok {
		return f(d)
	}
	return ast.ConvertChildren(n, f)
}

// lockedWriter serializes writes so Stdout and Stderr may share a writer.
type lockedWriter struct {
	sync.Mutex
	w io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.Lock()
	defer l.Unlock()
	return l.w.Write(p)
}

// countWriter counts the bytes written through it and stops at the first
// write error.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

// Generator renders one document. Like an exec.Cmd it cannot be reused
// once started.
type Generator struct {
	// Stdout receives the rendered document, or the output of Filter when
	// one is set. Stderr only receives the error stream of Filter. A nil
	// writer discards. When both are the same writer, writes to it are
	// serialized.
	Stdout io.Writer
	Stderr io.Writer

	// Filter is an optional command line the rendered document is piped
	// through.
	Filter string

	ctx  context.Context
	doc  *ast.Document
	conv ast.Visitor
	done chan error

	mu      sync.Mutex
	written int64
	pipes   []io.Closer
}

// Gen returns a Generator that renders doc with conv.
func Gen(doc *ast.Document, conv ast.Visitor) *Generator {
	return GenContext(context.Background(), doc, conv)
}

// GenContext is like Gen but bound to ctx. A done ctx stops the generator
// before rendering and kills a running Filter.
func GenContext(ctx context.Context, doc *ast.Document, conv ast.Visitor) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, doc: doc, conv: conv}
}

// Start begins rendering in the background. Call Wait for the result.
func (g *Generator) Start() error {
	if g.done != nil {
		return errors.New("already started")
	}
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	if g.Stderr == nil {
		g.Stderr = io.Discard
	}
	if g.Stdout == g.Stderr {
		lw := &lockedWriter{w: g.Stdout}
		g.Stdout, g.Stderr = lw, lw
	}
	g.done = make(chan error, 1)
	go func() {
		err := g.gen()
		g.closePipes()
		g.done <- err
	}()
	return nil
}

func (g *Generator) closePipes() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range g.pipes {
		p.Close()
	}
	g.pipes = nil
}

// Wait blocks until the generator started by Start finishes and returns
// its error. Reads from StdoutPipe and StderrPipe must be complete first.
func (g *Generator) Wait() error {
	if g.done == nil {
		return errors.New("not started")
	}
	g.mu.Lock()
	open := g.pipes != nil
	g.mu.Unlock()
	if open {
		return errors.New("all reads from the pipe have not completed")
	}
	return <-g.done
}

// Run is Start followed by Wait.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// Written reports the number of bytes written to Stdout so far.
func (g *Generator) Written() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.written
}

func (g *Generator) pipe(w *io.Writer, name string) (io.Reader, error) {
	if *w != nil {
		return nil, fmt.Errorf("%s already set", name)
	}
	pr, pw := io.Pipe()
	*w = pw
	g.mu.Lock()
	g.pipes = append(g.pipes, pw)
	g.mu.Unlock()
	return pr, nil
}

// StdoutPipe returns a reader for the generator's output. The pipe closes
// when generation ends, so it must be drained before calling Wait, and
// Run cannot be used with it.
func (g *Generator) StdoutPipe() (io.Reader, error) { return g.pipe(&g.Stdout, "Stdout") }

// StderrPipe is like StdoutPipe for the Filter error stream.
func (g *Generator) StderrPipe() (io.Reader, error) { return g.pipe(&g.Stderr, "Stderr") }

// Output runs the generator and returns what it wrote to Stdout.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, errors.New("Stdout already set")
	}
	var b bytes.Buffer
	g.Stdout = &b
	err := g.Run()
	return b.Bytes(), err
}

// CombinedOutput is like Output but also collects Stderr.
func (g *Generator) CombinedOutput() ([]byte, error) {
	if g.Stdout != nil || g.Stderr != nil {
		return nil, errors.New("Stdout or Stderr already set")
	}
	var b bytes.Buffer
	g.Stdout, g.Stderr = &b, &b
	err := g.Run()
	return b.Bytes(), err
}

func (g *Generator) gen() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if g.doc == nil || g.conv == nil {
		return errors.New("nothing to generate")
	}
	cw := &countWriter{w: g.Stdout}
	defer func() {
		g.mu.Lock()
		g.written = cw.n
		g.mu.Unlock()
	}()
	out := ast.Convert(g.doc, g.conv)
	if g.Filter != "" {
		c := &Command{Ctx: g.ctx, Stderr: g.Stderr}
		if err := c.Gen(g.Filter, strings.NewReader(out), cw); err != nil {
			return err
		}
		return cw.err
	}
	_, err := io.WriteString(cw, out)
	return err
}
