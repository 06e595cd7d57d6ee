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
	"fmt"
	"strings"
)

// Kind classifies a pre-node, the intermediate unit built from source lines
// before the final tree exists.
type Kind int

const (
	Heading Kind = iota
	UnorderedListItem
	OrderedListItem
	TaskListItem
	Paragraph
	LineBreak
	Text
	Link
	Image
	Blockquote
	CodeFenceMarker
	CodeBlock
	TableRow
	TableBorder
	Table
	HorizontalRule
	List
	BlockquoteGroup
)

var kindNames = [...]string{
	Heading:           "Heading",
	UnorderedListItem: "UnorderedListItem",
	OrderedListItem:   "OrderedListItem",
	TaskListItem:      "TaskListItem",
	Paragraph:         "Paragraph",
	LineBreak:         "LineBreak",
	Text:              "Text",
	Link:              "Link",
	Image:             "Image",
	Blockquote:        "Blockquote",
	CodeFenceMarker:   "CodeFenceMarker",
	CodeBlock:         "CodeBlock",
	TableRow:          "TableRow",
	TableBorder:       "TableBorder",
	Table:             "Table",
	HorizontalRule:    "HorizontalRule",
	List:              "List",
	BlockquoteGroup:   "BlockquoteGroup",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) isListItem() bool {
	return k == UnorderedListItem || k == OrderedListItem || k == TaskListItem
}

// preNode is owned by the pass that creates it. Passes return new slices
// and never change a pre-node they received.
type preNode struct {
	kind     Kind
	content  string
	children []preNode
	line     int // 1-based line the node starts on
}

// source returns the raw text the node was built from.
func (n preNode) source() string {
	if len(n.children) == 0 {
		return n.content
	}
	var b strings.Builder
	b.WriteString(n.content)
	for _, c := range n.children {
		b.WriteString(c.source())
	}
	return b.String()
}

// String renders the pre-node tree, one node per line.
func (n preNode) String() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n preNode) dump(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s- %s: %q\n", strings.Repeat("  ", depth), n.kind, strings.TrimSpace(n.content))
	for _, c := range n.children {
		c.dump(b, depth+1)
	}
}
