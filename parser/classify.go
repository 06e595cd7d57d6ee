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
	"regexp"
	"strings"
)

type linePattern struct {
	kind  Kind
	match func(line string) bool
}

// linePatterns returns the line classifiers in priority order. Task items
// come before the other list items because every task line is also a valid
// bullet or number line. Text is last and accepts anything.
func linePatterns() []linePattern {
	re := func(k Kind, expr string) linePattern {
		return linePattern{k, regexp.MustCompile(expr).MatchString}
	}
	return []linePattern{
		re(Heading, `^#{1,6}\s.*\n$`),
		{HorizontalRule, isRule},
		re(TaskListItem, `^\s*([-*+]|\d+\.)\s+\[( |x|X)\]\s+.*\n$`),
		re(UnorderedListItem, `^\s*[-*+]\s.*\n$`),
		re(OrderedListItem, `^\s*\d+\.\s+.*\n$`),
		re(LineBreak, `^\s*$`),
		re(Blockquote, `^\s*>+.*\n$`),
		re(CodeFenceMarker, "^\\s*```.*\\n$"),
		re(TableBorder, `^\|?(\s*:?\s*-+:?\s*\|)*\s*:?\s*-+:?\s*\|?\s*\n$`),
		re(TableRow, `^\|?(.*\|)+.*\|?\n$`),
		{Text, func(string) bool { return true }},
	}
}

// isRule reports whether line is three or more of the same mark among
// '*', '-' and '_', optionally separated by blanks.
func isRule(line string) bool {
	if !strings.HasSuffix(line, "\n") {
		return false
	}
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	mark := t[0]
	if mark != '*' && mark != '-' && mark != '_' {
		return false
	}
	n := 0
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case mark:
			n++
		case ' ', '\t', '\r', '\f', '\v':
		default:
			return false
		}
	}
	return n >= 3
}

// Classify returns the kind of the first pattern matching line. The line
// should include its terminator. The result depends on line alone.
func (p *Parser) Classify(line string) Kind {
	for _, lp := range p.lines {
		if lp.match(line) {
			return lp.kind
		}
	}
	return Text
}

func (p *Parser) classifyAll(lines []string) []preNode {
	nodes := make([]preNode, len(lines))
	for i, l := range lines {
		nodes[i] = preNode{kind: p.Classify(l), content: l, line: i + 1}
	}
	return nodes
}
