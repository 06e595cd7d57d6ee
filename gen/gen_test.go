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

package gen_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	"akhil.cc/markconv/ast"
	"akhil.cc/markconv/gen"
	"akhil.cc/markconv/gen/html"
	"akhil.cc/markconv/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *ast.Document {
	t.Helper()
	doc, err := parser.ParseString("# Title\nsome *text*\n")
	require.NoError(t, err)
	return doc
}

const sampleHTML = `<h1 id="title">Title</h1><p>some <em>text</em></p>`

func TestOutput(t *testing.T) {
	out, err := gen.Gen(sample(t), html.Converter{}).Output()
	require.NoError(t, err)
	assert.Equal(t, sampleHTML, string(out))
}

func TestOutputStdoutSet(t *testing.T) {
	g := gen.Gen(sample(t), html.Converter{})
	g.Stdout = io.Discard
	_, err := g.Output()
	assert.Error(t, err)
	_, err = g.CombinedOutput()
	assert.Error(t, err)
}

func TestRunWritten(t *testing.T) {
	var buf bytes.Buffer
	g := gen.Gen(sample(t), html.Converter{})
	g.Stdout = &buf
	require.NoError(t, g.Run())
	assert.Equal(t, sampleHTML, buf.String())
	assert.EqualValues(t, len(sampleHTML), g.Written())
}

func TestWaitNotStarted(t *testing.T) {
	assert.Error(t, gen.Gen(sample(t), html.Converter{}).Wait())
}

func TestStdoutPipe(t *testing.T) {
	g := gen.Gen(sample(t), html.Converter{})
	r, err := g.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, g.Start())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, sampleHTML, string(b))
	assert.NoError(t, g.Wait())
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := gen.GenContext(ctx, sample(t), html.Converter{}).Output()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}

func needs(t *testing.T, prog string) {
	t.Helper()
	if _, err := exec.LookPath(prog); err != nil {
		t.Skipf("%s not available", prog)
	}
}

func TestFilter(t *testing.T) {
	needs(t, "tr")
	g := gen.Gen(sample(t), html.Converter{})
	g.Filter = "tr a-z A-Z"
	out, err := g.Output()
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(sampleHTML), string(out))
}

func TestFilterStderr(t *testing.T) {
	needs(t, "sh")
	g := gen.Gen(sample(t), html.Converter{})
	g.Filter = `sh -c "cat >/dev/null; echo oops >&2"`
	out, err := g.CombinedOutput()
	require.NoError(t, err)
	assert.Equal(t, "oops\n", string(out))
}

func TestFilterTimeout(t *testing.T) {
	needs(t, "sleep")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	g := gen.GenContext(ctx, sample(t), html.Converter{})
	g.Filter = "sleep 5"
	assert.Error(t, g.Run())
}

func TestCommand(t *testing.T) {
	c := &gen.Command{}
	err := c.Gen("   ", strings.NewReader(""), io.Discard)
	assert.True(t, errors.Is(err, gen.ErrNoCommand), "got %v", err)

	err = c.Gen(`echo "unterminated`, strings.NewReader(""), io.Discard)
	assert.Error(t, err)

	err = c.Gen("cat", strings.NewReader(""), nil)
	assert.Error(t, err)
}

func TestCommandCat(t *testing.T) {
	needs(t, "cat")
	var out bytes.Buffer
	c := &gen.Command{Ctx: context.Background()}
	require.NoError(t, c.Gen("cat", strings.NewReader("piped\n"), &out))
	assert.Equal(t, "piped\n", out.String())
}

func TestDocumentFunc(t *testing.T) {
	f := gen.DocumentFunc(func(doc *ast.Document) string {
		return ast.PlainText(doc)
	})
	out, err := gen.Gen(sample(t), f).Output()
	require.NoError(t, err)
	assert.Equal(t, "Titlesome text\n", string(out))
}

func TestStderrPipe(t *testing.T) {
	needs(t, "sh")
	g := gen.Gen(sample(t), html.Converter{})
	g.Filter = `sh -c "cat >/dev/null; echo oops >&2; exit 3"`
	r, err := g.StderrPipe()
	require.NoError(t, err)
	_, err = g.StderrPipe()
	assert.Error(t, err)
	require.NoError(t, g.Start())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "oops\n", string(b))

	err = g.Wait()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Zero(t, g.Written())
}
