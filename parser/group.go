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

import "strings"

func isTableLine(k Kind) bool { return k == TableRow || k == TableBorder }

// groupTables merges a table line followed by a delimiter row, and every
// table line after them, into one Table whose content is the raw rows.
// A table line that starts no table is demoted to Text.
func groupTables(nodes []preNode) []preNode {
	var (
		grouped []preNode
		table   *strings.Builder
		start   int
	)
	flush := func() {
		if table != nil {
			grouped = append(grouped, preNode{kind: Table, content: table.String(), line: start})
			table = nil
		}
	}
	for i, n := range nodes {
		switch {
		case isTableLine(n.kind) && table != nil:
			table.WriteString(n.content)
		case isTableLine(n.kind):
			if i+1 < len(nodes) && nodes[i+1].kind == TableBorder {
				table = new(strings.Builder)
				table.WriteString(n.content)
				start = n.line
				continue
			}
			n.kind = Text
			grouped = append(grouped, n)
		default:
			flush()
			grouped = append(grouped, n)
		}
	}
	flush()
	return grouped
}

// quoteDepth is the length of the first run of '>' in line.
func quoteDepth(line string) int {
	i := strings.IndexByte(line, '>')
	if i < 0 {
		return 0
	}
	n := 0
	for i+n < len(line) && line[i+n] == '>' {
		n++
	}
	return n
}

// groupBlockquotes collects a quote line and the quote or text lines that
// follow it, then nests them by quote depth.
func groupBlockquotes(nodes []preNode) []preNode {
	var grouped []preNode
	for i := 0; i < len(nodes); {
		if nodes[i].kind != Blockquote {
			grouped = append(grouped, nodes[i])
			i++
			continue
		}
		j := i + 1
		for j < len(nodes) && (nodes[j].kind == Blockquote || nodes[j].kind == Text) {
			j++
		}
		quote, _ := nestQuotes(nodes[i:j], 0, 1)
		quote.line = nodes[i].line
		grouped = append(grouped, quote)
		i = j
	}
	return grouped
}

// nestQuotes builds one Blockquote at depth from lines[idx:]. Lines at depth
// and plain text become Text children; a deeper line opens a nested quote;
// a shallower line ends this one. It returns the quote and the index of the
// first line it did not consume.
func nestQuotes(lines []preNode, idx, depth int) (preNode, int) {
	quote := preNode{kind: Blockquote}
	if idx < len(lines) {
		quote.line = lines[idx].line
	}
	for idx < len(lines) {
		l := lines[idx]
		if l.kind == Text {
			quote.children = append(quote.children, l)
			idx++
			continue
		}
		d := quoteDepth(l.content)
		switch {
		case d == depth:
			l.kind = Text
			quote.children = append(quote.children, l)
			idx++
		case d > depth:
			var inner preNode
			inner, idx = nestQuotes(lines, idx, depth+1)
			quote.children = append(quote.children, inner)
		default:
			return quote, idx
		}
	}
	return quote, idx
}

// groupCode turns everything from an opening fence up to a bare closing
// fence into one CodeBlock. The content keeps the opening fence line so the
// language can be read back; an unclosed fence runs to the end.
func groupCode(nodes []preNode) []preNode {
	var (
		grouped []preNode
		code    *strings.Builder
		start   int
	)
	for _, n := range nodes {
		switch {
		case code == nil && n.kind == CodeFenceMarker:
			code = new(strings.Builder)
			code.WriteString(n.content)
			start = n.line
		case code == nil:
			grouped = append(grouped, n)
		case n.kind == CodeFenceMarker && strings.TrimSpace(n.content) == "```":
			grouped = append(grouped, preNode{kind: CodeBlock, content: code.String(), line: start})
			code = nil
		default:
			code.WriteString(n.source())
		}
	}
	if code != nil {
		grouped = append(grouped, preNode{kind: CodeBlock, content: code.String(), line: start})
	}
	return grouped
}

// groupParagraphs merges runs of Text into Paragraphs. Blank lines stay on
// their own and always end a paragraph.
func groupParagraphs(nodes []preNode) []preNode {
	var grouped []preNode
	for i := 0; i < len(nodes); {
		if nodes[i].kind != Text {
			grouped = append(grouped, nodes[i])
			i++
			continue
		}
		j := i
		for j < len(nodes) && nodes[j].kind == Text {
			j++
		}
		lines := make([]preNode, j-i)
		copy(lines, nodes[i:j])
		grouped = append(grouped, preNode{kind: Paragraph, children: lines, line: nodes[i].line})
		i = j
	}
	return grouped
}
