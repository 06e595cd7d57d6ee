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
	"unicode"
)

// groupLists attaches the text lines following a list item to that item,
// then nests the items into Lists by indentation.
func groupLists(nodes []preNode) []preNode {
	var (
		items []preNode
		item  *preNode
	)
	for _, n := range nodes {
		switch {
		case n.kind.isListItem():
			if item != nil {
				items = append(items, *item)
			}
			item = &preNode{
				kind:     n.kind,
				children: []preNode{{kind: Text, content: n.content, line: n.line}},
				line:     n.line,
			}
		case n.kind == Text && item != nil:
			item.children = append(item.children, n)
		default:
			if item != nil {
				items = append(items, *item)
				item = nil
			}
			items = append(items, n)
		}
	}
	if item != nil {
		items = append(items, *item)
	}
	m := listMerger{nodes: items}
	return m.merge(0)
}

// indent returns the byte length of the leading white space of s.
func indent(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// itemLevel is the nesting level of a list item: two columns of indent
// per level.
func itemLevel(n preNode) int {
	return indent(n.children[0].content) / 2
}

type listMerger struct {
	nodes []preNode
	pos   int
}

// merge consumes nodes while they belong to nesting level lvl and returns
// the pre-nodes built for that level. At level 0 everything is consumed;
// deeper levels stop at the first node that is not a deeper or equal item.
func (m *listMerger) merge(lvl int) []preNode {
	var (
		out  []preNode
		list *preNode
	)
	closeList := func() {
		if list != nil {
			out = append(out, *list)
			list = nil
		}
	}
	for m.pos < len(m.nodes) {
		n := m.nodes[m.pos]
		if !n.kind.isListItem() {
			closeList()
			if lvl > 0 {
				return out
			}
			out = append(out, n)
			m.pos++
			continue
		}
		switch d := itemLevel(n); {
		case d == lvl:
			if list != nil && list.children[0].kind != n.kind {
				closeList()
			}
			if list == nil {
				list = &preNode{kind: List, line: n.line}
			}
			n.children = append([]preNode(nil), n.children...)
			list.children = append(list.children, n)
			m.pos++
		case d > lvl:
			if list == nil {
				// Nothing to hang the deeper item on; stand in an empty bullet.
				list = &preNode{
					kind:     List,
					line:     n.line,
					children: []preNode{{kind: UnorderedListItem, line: n.line}},
				}
			}
			last := &list.children[len(list.children)-1]
			last.children = append(last.children, m.merge(lvl+1)...)
		default:
			closeList()
			return out
		}
	}
	closeList()
	return out
}
