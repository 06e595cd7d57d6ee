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

// Tests for parse.go
package parser_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"akhil.cc/markconv/ast"
	"akhil.cc/markconv/parser"
	"github.com/sanity-io/litter"
)

var litCfg = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: true,
	Separator:         " ",
}

type smallcase struct {
	in   string
	want *ast.Document
	werr error
}

func txt(s string) *ast.Text { return &ast.Text{Value: s} }

func br(ns ...ast.Node) ast.Branch { return ast.Branch{Nodes: ns} }

func doc(ns ...ast.Node) *ast.Document { return &ast.Document{Branch: br(ns...)} }

func par(ns ...ast.Node) *ast.Paragraph { return &ast.Paragraph{Branch: br(ns...)} }

func item(ns ...ast.Node) *ast.ListItem { return &ast.ListItem{Branch: br(ns...)} }

func list(t ast.ListType, ns ...ast.Node) *ast.List { return &ast.List{Branch: br(ns...), Type: t} }

func cell(s string, a ast.Alignment) *ast.TableCell {
	return &ast.TableCell{Branch: br(txt(s)), Alignment: a}
}

func run(t *testing.T, name string, cases []smallcase) {
	t.Helper()
	for i, test := range cases {
		got, err := parser.New().Parse(test.in)
		if wes, es := fmt.Sprint(test.werr), fmt.Sprint(err); es != wes || !reflect.DeepEqual(test.want, got) {
			t.Errorf("%s case %d, in %q,\nwant %s,\ngot %s,\nwant err %s,\ngot err %s", name, i, test.in, litCfg.Sdump(test.want), litCfg.Sdump(got), wes, es)
		}
	}
}

func TestHeadingLevels(t *testing.T) {
	var cases []smallcase
	for n := 1; n <= 6; n++ {
		cases = append(cases, smallcase{
			strings.Repeat("#", n) + " X\n",
			doc(&ast.Heading{Branch: br(txt("X")), Level: n}), nil,
		})
	}
	cases = append(cases,
		smallcase{"####### X\n", doc(par(txt("####### X\n"))), nil},
		smallcase{"#X\n", doc(par(txt("#X\n"))), nil},
		smallcase{"## a *b*\n", doc(&ast.Heading{Branch: br(txt("a "), &ast.Italic{Branch: br(txt("b"))}), Level: 2}), nil},
	)
	run(t, "heading", cases)
}

var scenarioSmall = []smallcase{
	{"# Title\n", doc(&ast.Heading{Branch: br(txt("Title")), Level: 1}), nil},
	{"- a\n- b\n", doc(list(ast.Unordered, item(txt("a\n")), item(txt("b\n")))), nil},
	{"|H1|H2|\n|--|--|\n|a|b|\n", doc(&ast.Table{Branch: br(
		&ast.TableRow{Branch: br(cell("H1", ast.Left), cell("H2", ast.Left)), IsHeader: true},
		&ast.TableRow{Branch: br(cell("a", ast.Left), cell("b", ast.Left))},
	)}), nil},
	{"```py\nprint(1)\n```\n", doc(&ast.CodeBlock{Code: "print(1)\n", Language: "py"}), nil},
	{"", doc(), nil},
}

func TestScenarios(t *testing.T) {
	run(t, "scenario", scenarioSmall)
}

var blockSmall = []smallcase{
	{"a\nb\n", doc(par(txt("a\n"), txt("b\n"))), nil},
	{"a\n\nb\n", doc(par(txt("a\n")), &ast.LineBreak{}, par(txt("b\n"))), nil},
	{"  \t\n", doc(&ast.LineBreak{}), nil},
	{"---\n", doc(&ast.HorizontalRule{}), nil},
	{"* * *\n", doc(&ast.HorizontalRule{}), nil},
	{"___\n", doc(&ast.HorizontalRule{}), nil},
	{"-*-\n", doc(par(txt("-*-\n"))), nil},
	{"> a\n>> b\n", doc(&ast.Blockquote{Branch: br(txt("a\n"), &ast.Blockquote{Branch: br(txt("b\n"))})}), nil},
	{"> a\nmore\n", doc(&ast.Blockquote{Branch: br(txt("a\n"), txt("more\n"))}), nil},
	{"> a\n>> b\n> c\n", doc(&ast.Blockquote{Branch: br(
		txt("a\n"), &ast.Blockquote{Branch: br(txt("b\n"))}, txt("c\n"),
	)}), nil},
	{"> **hi**\n", doc(&ast.Blockquote{Branch: br(&ast.Bold{Branch: br(txt("hi"))}, txt("\n"))}), nil},
	{"```\nx\n", doc(&ast.CodeBlock{Code: "x\n"}), nil},
	{"```go \n```\n", doc(&ast.CodeBlock{Language: "go"}), nil},
	{"```\n> q\n# h\n```\n", doc(&ast.CodeBlock{Code: "> q\n# h\n"}), nil},
	{"```\n|a|b|\n|-|-|\n```\n", doc(&ast.CodeBlock{Code: "|a|b|\n|-|-|\n"}), nil},
	{"```\na\n```js\n```\n", doc(&ast.CodeBlock{Code: "a\n```js\n"}), nil},
	{"a | b\n", doc(par(txt("a | b\n"))), nil},
}

func TestBlocks(t *testing.T) {
	run(t, "block", blockSmall)
}

var listSmall = []smallcase{
	{"- a\n  - b\n- c\n", doc(list(ast.Unordered,
		item(txt("a\n"), list(ast.Unordered, item(txt("b\n")))),
		item(txt("c\n")),
	)), nil},
	{"- a\n1. b\n", doc(
		list(ast.Unordered, item(txt("a\n"))),
		list(ast.Ordered, &ast.ListItem{Branch: br(txt("b\n")), Order: 1, Numbered: true}),
	), nil},
	{"3. x\n4. y\n", doc(list(ast.Ordered,
		&ast.ListItem{Branch: br(txt("x\n")), Order: 3, Numbered: true},
		&ast.ListItem{Branch: br(txt("y\n")), Order: 4, Numbered: true},
	)), nil},
	{"- [x] done\n- [ ] todo\n", doc(list(ast.Task,
		&ast.TaskListItem{ListItem: *item(txt("done\n")), Checked: true},
		&ast.TaskListItem{ListItem: *item(txt("todo\n"))},
	)), nil},
	{"1. [X] y\n", doc(list(ast.Task,
		&ast.TaskListItem{ListItem: ast.ListItem{Branch: br(txt("y\n")), Order: 1, Numbered: true}, Checked: true},
	)), nil},
	{"99999999999999999999. big\n", doc(list(ast.Ordered,
		&ast.ListItem{Branch: br(txt("big\n")), Order: math.MaxInt, Numbered: true},
	)), nil},
	{"99999999999999999999. [x] big task\n", doc(list(ast.Task,
		&ast.TaskListItem{ListItem: ast.ListItem{Branch: br(txt("big task\n")), Order: math.MaxInt, Numbered: true}, Checked: true},
	)), nil},
	{"- a\nmore\n", doc(list(ast.Unordered, item(txt("a\n"), txt("more\n")))), nil},
	{"- a\n\n- b\n", doc(
		list(ast.Unordered, item(txt("a\n"))),
		&ast.LineBreak{},
		list(ast.Unordered, item(txt("b\n"))),
	), nil},
	{"- a\n    - b\n", doc(list(ast.Unordered,
		item(txt("a\n"), list(ast.Unordered, item(list(ast.Unordered, item(txt("b\n")))))),
	)), nil},
	{"  - a\n", doc(list(ast.Unordered, item(list(ast.Unordered, item(txt("a\n")))))), nil},
	{"- a\n  1. b\n  2. c\n# h\n", doc(
		list(ast.Unordered, item(txt("a\n"), list(ast.Ordered,
			&ast.ListItem{Branch: br(txt("b\n")), Order: 1, Numbered: true},
			&ast.ListItem{Branch: br(txt("c\n")), Order: 2, Numbered: true},
		))),
		&ast.Heading{Branch: br(txt("h")), Level: 1},
	), nil},
	{"- *a*\n", doc(list(ast.Unordered, item(&ast.Italic{Branch: br(txt("a"))}, txt("\n")))), nil},
}

func TestLists(t *testing.T) {
	run(t, "list", listSmall)
}

var tableSmall = []smallcase{
	{"| L | C | R |\n|:--|:-:|--:|\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n", doc(&ast.Table{Branch: br(
		&ast.TableRow{Branch: br(cell("L", ast.Left), cell("C", ast.Center), cell("R", ast.Right)), IsHeader: true},
		&ast.TableRow{Branch: br(cell("1", ast.Left), cell("2", ast.Center), cell("3", ast.Right))},
		&ast.TableRow{Branch: br(cell("4", ast.Left), cell("5", ast.Center), cell("6", ast.Right))},
	)}), nil},
	{"a|b\n-|-\n", doc(&ast.Table{Branch: br(
		&ast.TableRow{Branch: br(cell("a", ast.Left), cell("b", ast.Left)), IsHeader: true},
	)}), nil},
	{"|a|b|\n|-|-|\n|1|2|3|\n", nil, &parser.Error{Line: 3, Err: parser.ErrStructure, Msg: "row has 3 cells, header has 2"}},
	{"|a|b|\n|-|-|-|\n", nil, &parser.Error{Line: 2, Err: parser.ErrStructure, Msg: "delimiter row has 3 columns, header has 2"}},
	{"x\n|a|b|\n|-|-|\n|1|\n", nil, &parser.Error{Line: 4, Err: parser.ErrStructure, Msg: "row has 1 cells, header has 2"}},
}

func TestTables(t *testing.T) {
	run(t, "table", tableSmall)
}

func TestStructureError(t *testing.T) {
	_, err := parser.ParseString("# ok\n|a|b|\n|-|-|\n|1|\nrest\n")
	if !errors.Is(err, parser.ErrStructure) {
		t.Fatalf("want ErrStructure, got %v", err)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Line != 4 {
		t.Errorf("want *parser.Error on line 4, got %#v", err)
	}
}

func TestParseString(t *testing.T) {
	got, err := parser.ParseString("# T")
	want := doc(&ast.Heading{Branch: br(txt("T")), Level: 1})
	if err != nil || !reflect.DeepEqual(want, got) {
		t.Errorf("want %s, got %s, err %v", litCfg.Sdump(want), litCfg.Sdump(got), err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on a broken table")
		}
	}()
	parser.MustParse(strings.NewReader("|a|b|\n|-|-|\n|1|\n"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want parser.Kind
	}{
		{"# h\n", parser.Heading},
		{"###### h\n", parser.Heading},
		{"####### h\n", parser.Text},
		{"***\n", parser.HorizontalRule},
		{" - - -\n", parser.HorizontalRule},
		{"- [ ] t\n", parser.TaskListItem},
		{"12. [x] t\n", parser.TaskListItem},
		{"- [y] t\n", parser.UnorderedListItem},
		{"+ u\n", parser.UnorderedListItem},
		{"  * u\n", parser.UnorderedListItem},
		{"1. o\n", parser.OrderedListItem},
		{"1.o\n", parser.Text},
		{"\n", parser.LineBreak},
		{"   \n", parser.LineBreak},
		{">> q\n", parser.Blockquote},
		{"```\n", parser.CodeFenceMarker},
		{"  ```rust\n", parser.CodeFenceMarker},
		{"|:--|--:|\n", parser.TableBorder},
		{"--|--\n", parser.TableBorder},
		{"|a|b|\n", parser.TableRow},
		{"a|b\n", parser.TableRow},
		{"plain\n", parser.Text},
	}
	p := parser.New()
	for _, test := range tests {
		got := p.Classify(test.in)
		if got != test.want {
			t.Errorf("Classify(%q) = %v, want %v", test.in, got, test.want)
		}
		if again := p.Classify(test.in); again != got {
			t.Errorf("Classify(%q) changed from %v to %v", test.in, got, again)
		}
	}
}

func TestConcurrentParse(t *testing.T) {
	p := parser.New()
	src := "# T\n- a\n  - b\n|x|y|\n|-|-|\n|1|2|\n> q\n"
	want, err := p.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Parse(src)
			if err != nil || !reflect.DeepEqual(want, got) {
				t.Errorf("concurrent parse differs: %s, err %v", litCfg.Sdump(got), err)
			}
		}()
	}
	wg.Wait()
}
