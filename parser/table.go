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

// columnAlignments reads one alignment per non-blank cell of a delimiter row.
func columnAlignments(border string) []ast.Alignment {
	var aligns []ast.Alignment
	for _, c := range strings.Split(strings.TrimSpace(border), "|") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		switch {
		case c[0] == ':' && c[len(c)-1] == ':' && len(c) > 1:
			aligns = append(aligns, ast.Center)
		case c[len(c)-1] == ':':
			aligns = append(aligns, ast.Right)
		default:
			aligns = append(aligns, ast.Left)
		}
	}
	return aligns
}

// rowCells splits a row on '|', dropping the empty fragments left by outer
// pipes. Cells are trimmed; an empty cell between two pipes is kept.
func rowCells(row string) []string {
	cells := strings.Split(strings.TrimSpace(row), "|")
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if n := len(cells); n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		cells = cells[:n-1]
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// table assembles a grouped table. Its first line is the header, its second
// the delimiter row which sets the alignment of every column.
func (p *Parser) table(n preNode) (ast.Node, error) {
	lines := splitLines(n.content)
	if len(lines) < 2 {
		return nil, errorf(n.line, ErrStructure, "table has no delimiter row")
	}
	header := rowCells(lines[0])
	aligns := columnAlignments(lines[1])
	if len(aligns) != len(header) {
		return nil, errorf(n.line+1, ErrStructure, "delimiter row has %d columns, header has %d", len(aligns), len(header))
	}
	t := &ast.Table{}
	for i, l := range lines {
		if i == 1 {
			continue
		}
		cells := rowCells(l)
		if len(cells) != len(header) {
			return nil, errorf(n.line+i, ErrStructure, "row has %d cells, header has %d", len(cells), len(header))
		}
		row := &ast.TableRow{IsHeader: i == 0}
		for j, c := range cells {
			children, err := parseInline(c)
			if err != nil {
				return nil, err
			}
			row.Nodes = append(row.Nodes, &ast.TableCell{Branch: ast.Branch{Nodes: children}, Alignment: aligns[j]})
		}
		t.Nodes = append(t.Nodes, row)
	}
	return t, nil
}
