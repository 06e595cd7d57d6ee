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

package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"akhil.cc/markconv/ast"
)

// A builder turns one grouped pre-node into its AST node.
type builder func(p *Parser, n preNode) (ast.Node, error)

func (p *Parser) build(n preNode) (ast.Node, error) {
	b, ok := p.builders[n.kind]
	if !ok {
		return nil, errorf(n.line, ErrInternal, "no builder for %v", n.kind)
	}
	return b(p, n)
}

// inline parses s and appends the result to dst.
func inline(dst []ast.Node, s string) ([]ast.Node, error) {
	nodes, err := parseInline(s)
	if err != nil {
		return nil, err
	}
	return append(dst, nodes...), nil
}

func (p *Parser) heading(n preNode) (ast.Node, error) {
	level := len(n.content) - len(strings.TrimLeft(n.content, "#"))
	title := strings.TrimRight(strings.TrimLeft(n.content, "# "), "\n")
	h := &ast.Heading{Level: level}
	var err error
	h.Nodes, err = inline(nil, title)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (p *Parser) horizontalRule(preNode) (ast.Node, error) {
	return &ast.HorizontalRule{}, nil
}

func (p *Parser) lineBreak(preNode) (ast.Node, error) {
	return &ast.LineBreak{}, nil
}

func (p *Parser) paragraph(n preNode) (ast.Node, error) {
	par := &ast.Paragraph{}
	var err error
	for _, c := range n.children {
		if par.Nodes, err = inline(par.Nodes, c.content); err != nil {
			return nil, err
		}
	}
	return par, nil
}

// blockquote strips the quote markers of every line and keeps nested quotes
// as they were grouped.
func (p *Parser) blockquote(n preNode) (ast.Node, error) {
	q := &ast.Blockquote{}
	for _, c := range n.children {
		if c.kind == Blockquote {
			inner, err := p.blockquote(c)
			if err != nil {
				return nil, err
			}
			q.Nodes = append(q.Nodes, inner)
			continue
		}
		var err error
		if q.Nodes, err = inline(q.Nodes, strings.TrimLeft(c.content, " >")); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// codeBlock reads the language from the opening fence; the code is every
// line after it.
func (p *Parser) codeBlock(n preNode) (ast.Node, error) {
	first, code := n.content, ""
	if i := strings.IndexByte(n.content, '\n'); i >= 0 {
		first, code = n.content[:i], n.content[i+1:]
	}
	lang := ""
	if i := strings.Index(first, "```"); i >= 0 {
		lang = strings.TrimSpace(first[i+3:])
	}
	return &ast.CodeBlock{Code: code, Language: lang}, nil
}

func (p *Parser) list(n preNode) (ast.Node, error) {
	l := &ast.List{}
	if len(n.children) > 0 {
		switch n.children[0].kind {
		case OrderedListItem:
			l.Type = ast.Ordered
		case TaskListItem:
			l.Type = ast.Task
		}
	}
	for _, c := range n.children {
		item, err := p.build(c)
		if err != nil {
			return nil, err
		}
		l.Nodes = append(l.Nodes, item)
	}
	return l, nil
}

// itemChildren builds the body of a list item. The first line has already
// lost its marker; nested Lists go through the builder table.
func (p *Parser) itemChildren(first string, n preNode) ([]ast.Node, error) {
	var nodes []ast.Node
	for i, c := range n.children {
		var err error
		switch {
		case c.kind != Text:
			var sub ast.Node
			if sub, err = p.build(c); err == nil {
				nodes = append(nodes, sub)
			}
		case i == 0:
			nodes, err = inline(nodes, first)
		default:
			nodes, err = inline(nodes, c.content)
		}
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// marker returns the first line of an item, or "" if it has none.
func marker(n preNode) string {
	if len(n.children) == 0 || n.children[0].kind != Text {
		return ""
	}
	return n.children[0].content
}

func (p *Parser) unorderedItem(n preNode) (ast.Node, error) {
	line := marker(n)
	if skip := indent(line) + 2; skip <= len(line) {
		line = line[skip:]
	}
	children, err := p.itemChildren(line, n)
	if err != nil {
		return nil, err
	}
	return &ast.ListItem{Branch: ast.Branch{Nodes: children}}, nil
}

var orderedMarker = regexp.MustCompile(`^\s*(\d+)\.\s`)

// listNumber converts the digits of a list marker. Numbers too large for an
// int saturate at math.MaxInt.
func listNumber(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

func (p *Parser) orderedItem(n preNode) (ast.Node, error) {
	line := marker(n)
	m := orderedMarker.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, errorf(n.line, ErrInternal, "ordered item without a number: %q", line)
	}
	order := listNumber(line[m[2]:m[3]])
	children, err := p.itemChildren(line[m[1]:], n)
	if err != nil {
		return nil, err
	}
	return &ast.ListItem{Branch: ast.Branch{Nodes: children}, Order: order, Numbered: true}, nil
}

var taskMarker = regexp.MustCompile(`^\s*([-*+]|(\d+)\.)\s+\[( |x|X)\]\s`)

func (p *Parser) taskItem(n preNode) (ast.Node, error) {
	line := marker(n)
	m := taskMarker.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, errorf(n.line, ErrInternal, "task item without a checkbox: %q", line)
	}
	item := &ast.TaskListItem{Checked: line[m[6]:m[7]] != " "}
	if m[4] >= 0 {
		item.Order, item.Numbered = listNumber(line[m[4]:m[5]]), true
	}
	children, err := p.itemChildren(line[m[1]:], n)
	if err != nil {
		return nil, err
	}
	item.Nodes = children
	return item, nil
}
