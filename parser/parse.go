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

// Package parser implements a parser for Markdown source. It takes the whole
// document as a string and outputs an *ast.Document.
//
// Parsing runs in three layers. Every physical line is first classified on
// its own. Block groupers then merge adjacent lines into composite pre-nodes,
// in this order: tables, blockquotes, fenced code, lists, paragraphs. The
// builder finally turns every pre-node into AST nodes, handing the text left
// after stripping block syntax to the inline parser.
//
// The parser adheres to the following line grammar, tried top to bottom:
//
//      heading     = "#"{1,6} space { char } newline .
//      rule        = ws mark ws mark ws mark { ws mark } ws newline .   (one mark of "*-_")
//      task_item   = ws ( bullet | digits "." ) space "[" ( " " | "x" | "X" ) "]" space { char } newline .
//      bullet_item = ws ( "-" | "*" | "+" ) space { char } newline .
//      number_item = ws digits "." space { char } newline .
//      blank       = ws .
//      quote       = ws ">" { ">" } { char } newline .
//      fence       = ws "```" [ language ] newline .
//      table_rule  = [ "|" ] { cell_rule "|" } cell_rule [ "|" ] newline .
//      table_row   = [ "|" ] { char } "|" { char } newline .
//      text        = { char } .
//
// Inline spans are recognized by a single left-to-right scan:
//
//      code   = backtick { backtick } char { char } backtick { backtick } .
//      strong = "***" { "*" } char { char } "***" { "*" } .
//      bold   = "**" char { char } "**" .
//      italic = "*" char { char } "*" .
//      strike = "~~" { "~" } char { char } "~~" { "~" } .
//      image  = "![" { char } "](" char { char } ")" .
//      link   = "[" char { char } "](" char { char } ")" .
//
// Closing delimiters repeat the opening run exactly. A structural error,
// such as a table row with the wrong number of cells, aborts the whole parse.
package parser // import "akhil.cc/markconv/parser"

import (
	"io"
	"strings"

	"akhil.cc/markconv/ast"
)

// Parser holds the compiled line patterns and the pre-node builders. It is
// never modified after New returns, so one Parser may be shared by many
// goroutines.
type Parser struct {
	lines    []linePattern
	builders map[Kind]builder
}

// New returns a ready to use Markdown parser.
func New() *Parser {
	p := &Parser{lines: linePatterns()}
	p.builders = map[Kind]builder{
		Heading:           (*Parser).heading,
		HorizontalRule:    (*Parser).horizontalRule,
		LineBreak:         (*Parser).lineBreak,
		Paragraph:         (*Parser).paragraph,
		Blockquote:        (*Parser).blockquote,
		CodeBlock:         (*Parser).codeBlock,
		Table:             (*Parser).table,
		List:              (*Parser).list,
		UnorderedListItem: (*Parser).unorderedItem,
		OrderedListItem:   (*Parser).orderedItem,
		TaskListItem:      (*Parser).taskItem,
	}
	return p
}

var std = New()

// Parse parses the source and if successful, returns its corresponding AST
// structure. A final line terminator is added when the source lacks one.
func Parse(src io.Reader) (*ast.Document, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// ParseString is like Parse but takes the source as a string.
func ParseString(s string) (*ast.Document, error) {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return std.Parse(s)
}

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src io.Reader) *ast.Document {
	d, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return d
}

// Parse converts content into a document tree. Every line of content,
// including the last one, is expected to end with a line terminator.
// No partial tree is returned on error.
func (p *Parser) Parse(content string) (*ast.Document, error) {
	nodes := p.classifyAll(splitLines(content))
	nodes = group(nodes)
	doc := &ast.Document{}
	for _, n := range nodes {
		c, err := p.build(n)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, c)
	}
	return doc, nil
}

// group applies the block groupers in their fixed order.
func group(nodes []preNode) []preNode {
	nodes = groupTables(nodes)
	nodes = groupBlockquotes(nodes)
	nodes = groupCode(nodes)
	nodes = groupLists(nodes)
	return groupParagraphs(nodes)
}

// splitLines splits s after every newline, keeping the terminators.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
