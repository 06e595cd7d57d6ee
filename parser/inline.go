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
	"strings"

	"akhil.cc/markconv/ast"
)

type spanKind int

const (
	spanCode spanKind = iota
	spanStrong
	spanBold
	spanItalic
	spanStrike
	spanImage
	spanLink
)

// A span is one inline match. Body is the text between the delimiters, or
// the alt text and label for images and links; dest is their target.
type span struct {
	kind       spanKind
	start, end int
	delim      int
	body, dest string
}

type spanMatcher func(s string, i int) (span, bool)

// spanMatchers are tried in order at every offset; the first match wins.
var spanMatchers = []spanMatcher{
	delimited(spanCode, '`', 1, 0),
	delimited(spanStrong, '*', 3, 0),
	delimited(spanBold, '*', 2, 2),
	delimited(spanItalic, '*', 1, 1),
	delimited(spanStrike, '~', 2, 0),
	matchImage,
	matchLink,
}

// delimited matches a run of at least min (and at most max, when max > 0)
// copies of c, a non-empty body, and the same run again. Longer opening
// runs are tried first; the body ends at the first closing run.
func delimited(kind spanKind, c byte, min, max int) spanMatcher {
	return func(s string, i int) (span, bool) {
		r := 0
		for i+r < len(s) && s[i+r] == c {
			r++
		}
		if max > 0 && r > max {
			r = max
		}
		for l := r; l >= min; l-- {
			from := i + l + 1
			if from > len(s) {
				continue
			}
			j := strings.Index(s[from:], s[i:i+l])
			if j < 0 {
				continue
			}
			end := from + j
			return span{kind: kind, start: i, end: end + l, delim: l, body: s[i+l : end]}, true
		}
		return span{}, false
	}
}

// target matches "(dest)" at s[i:] with a non-empty dest free of ')'.
func target(s string, i int) (string, int, bool) {
	if i >= len(s) || s[i] != '(' {
		return "", 0, false
	}
	j := strings.IndexByte(s[i+1:], ')')
	if j < 1 {
		return "", 0, false
	}
	return s[i+1 : i+1+j], i + j + 2, true
}

// matchImage matches ![alt](dest). The alt text may be empty.
func matchImage(s string, i int) (span, bool) {
	if !strings.HasPrefix(s[i:], "![") {
		return span{}, false
	}
	k := strings.IndexByte(s[i+2:], ']')
	if k < 0 {
		return span{}, false
	}
	dest, end, ok := target(s, i+2+k+1)
	if !ok {
		return span{}, false
	}
	return span{kind: spanImage, start: i, end: end, body: s[i+2 : i+2+k], dest: dest}, true
}

// matchLink matches [label](dest) with a non-empty label.
func matchLink(s string, i int) (span, bool) {
	if s[i] != '[' {
		return span{}, false
	}
	k := strings.IndexByte(s[i+1:], ']')
	if k < 1 {
		return span{}, false
	}
	dest, end, ok := target(s, i+1+k+1)
	if !ok {
		return span{}, false
	}
	return span{kind: spanLink, start: i, end: end, body: s[i+1 : i+1+k], dest: dest}, true
}

// nextSpan returns the leftmost match starting at or after from.
func nextSpan(s string, from int) (span, bool) {
	for i := from; i < len(s); i++ {
		if strings.IndexByte("`*~![", s[i]) < 0 {
			continue
		}
		for _, m := range spanMatchers {
			if sp, ok := m(s, i); ok {
				return sp, true
			}
		}
	}
	return span{}, false
}

// parseInline splits s into inline nodes. Text between matches becomes Text
// leaves; when nothing matches the result is a single Text holding all of s.
func parseInline(s string) ([]ast.Node, error) {
	var nodes []ast.Node
	pos := 0
	for pos < len(s) {
		sp, ok := nextSpan(s, pos)
		if !ok {
			break
		}
		if sp.start > pos {
			nodes = append(nodes, &ast.Text{Value: s[pos:sp.start]})
		}
		n, err := sp.node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		pos = sp.end
	}
	if pos < len(s) || len(nodes) == 0 {
		nodes = append(nodes, &ast.Text{Value: s[pos:]})
	}
	return nodes, nil
}

func (sp span) node() (ast.Node, error) {
	if sp.kind == spanCode {
		return &ast.InlineCode{Code: sp.body}, nil
	}
	if sp.kind == spanImage {
		return &ast.Image{Source: sp.dest, AltText: sp.body}, nil
	}
	children, err := parseInline(sp.body)
	if err != nil {
		return nil, err
	}
	switch sp.kind {
	case spanStrong:
		if sp.delim%2 == 0 {
			return &ast.Bold{Branch: ast.Branch{Nodes: children}}, nil
		}
		italic := &ast.Italic{Branch: ast.Branch{Nodes: children}}
		return &ast.Bold{Branch: ast.Branch{Nodes: []ast.Node{italic}}}, nil
	case spanBold:
		return &ast.Bold{Branch: ast.Branch{Nodes: children}}, nil
	case spanItalic:
		return &ast.Italic{Branch: ast.Branch{Nodes: children}}, nil
	case spanStrike:
		return &ast.Strike{Branch: ast.Branch{Nodes: children}}, nil
	case spanLink:
		return &ast.Link{Branch: ast.Branch{Nodes: children}, Source: sp.dest}, nil
	}
	return nil, errorf(0, ErrInternal, "inline match of kind %d has no constructor", sp.kind)
}
