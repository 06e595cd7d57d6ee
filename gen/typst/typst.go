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

// Package typst converts a document tree into Typst markup.
package typst // import "akhil.cc/markconv/gen/typst"

import (
	"fmt"
	"strconv"
	"strings"

	"akhil.cc/markconv/ast"
	"github.com/shurcooL/sanitized_anchor_name"
)

var escaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "#", `\#`, "[", `\[`, "]", `\]`,
	"+", `\+`, "-", `\-`, "/", `\/`, "$", `\$`, "=", `\=`,
	"<", `\<`, ">", `\>`, "@", `\@`, "'", `\'`, `"`, `\"`,
	"`", "\\`",
	"_ ", `\_ `, " _", ` \_`,
)

// Escape quotes the Typst markup characters in s.
func Escape(s string) string { return escaper.Replace(s) }

// quote renders s as a Typst string literal.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// Converter renders nodes as Typst markup. The zero value is ready to use.
type Converter struct{}

// Convert renders doc as a Typst document.
func Convert(doc *ast.Document) string {
	return ast.Convert(doc, Converter{})
}

func (c Converter) children(n ast.Node) string { return ast.ConvertChildren(n, c) }

func (c Converter) ConvertDefault(n ast.Node) string { return c.children(n) }

func (c Converter) ConvertDocument(d *ast.Document) string { return c.children(d) + "\n" }

func (c Converter) ConvertHeading(h *ast.Heading) string {
	label := sanitized_anchor_name.Create(ast.PlainText(h))
	if label == "" {
		return "\n" + strings.Repeat("=", h.Level) + " " + c.children(h) + "\n"
	}
	return "\n" + strings.Repeat("=", h.Level) + " " + c.children(h) + " <" + label + ">\n"
}

func (c Converter) ConvertBold(b *ast.Bold) string { return "*" + c.children(b) + "*" }

func (c Converter) ConvertItalic(i *ast.Italic) string { return "_" + c.children(i) + "_" }

func (c Converter) ConvertStrike(s *ast.Strike) string { return "#strike[" + c.children(s) + "]" }

func (c Converter) ConvertText(t *ast.Text) string { return Escape(t.Value) }

func (c Converter) ConvertParagraph(p *ast.Paragraph) string { return "\n" + c.children(p) + "\n" }

func (c Converter) ConvertLineBreak(*ast.LineBreak) string { return "\\ " }

func (c Converter) ConvertBlockquote(q *ast.Blockquote) string { return "#quote[" + c.children(q) + "]" }

// indent shifts every line of s but the first by one tab. A trailing
// newline is kept as is.
func indent(s string) string {
	body := strings.TrimSuffix(s, "\n")
	body = strings.ReplaceAll(body, "\n", "\n\t")
	if len(body) < len(s) {
		body += "\n"
	}
	return body
}

func (c Converter) ConvertList(l *ast.List) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, n := range l.Nodes {
		marker := "+"
		var item *ast.ListItem
		switch t := n.(type) {
		case *ast.ListItem:
			item = t
		case *ast.TaskListItem:
			item = &t.ListItem
		}
		switch {
		case l.Type == ast.Unordered:
			marker = "-"
		case item != nil && item.Numbered:
			marker = strconv.Itoa(item.Order) + "."
		}
		b.WriteString(marker + " " + indent(ast.Convert(n, c)))
	}
	return b.String()
}

func (c Converter) ConvertListItem(i *ast.ListItem) string {
	s := c.children(i)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

func (c Converter) ConvertTaskListItem(i *ast.TaskListItem) string {
	box := "[ ] "
	if i.Checked {
		box = "[x] "
	}
	return box + strings.TrimSuffix(c.children(i), "\n") + "\n"
}

func (c Converter) ConvertCodeBlock(b *ast.CodeBlock) string {
	return "```" + b.Language + "\n" + b.Code + "```\n"
}

func (c Converter) ConvertInlineCode(i *ast.InlineCode) string {
	return "#raw(" + quote(i.Code) + ")"
}

func (c Converter) ConvertImage(i *ast.Image) string {
	if i.AltText == "" {
		return "#image(" + quote(i.Source) + ")"
	}
	return "#image(" + quote(i.Source) + ", alt: " + quote(i.AltText) + ")"
}

func (c Converter) ConvertLink(l *ast.Link) string {
	if len(l.Nodes) == 0 {
		return "#link(" + quote(l.Source) + ")"
	}
	return "#link(" + quote(l.Source) + ")[" + c.children(l) + "]"
}

func (c Converter) ConvertHorizontalRule(*ast.HorizontalRule) string { return "#line(length: 100%)" }

var alignNames = map[ast.Alignment]string{ast.Left: "left", ast.Center: "center", ast.Right: "right"}

func (c Converter) ConvertTable(t *ast.Table) string {
	columns := 0
	var align []string
	for _, r := range t.Nodes {
		if cells := r.Children(); len(cells) > columns {
			columns = len(cells)
			align = align[:0]
			for _, n := range cells {
				if cell, ok := n.(*ast.TableCell); ok {
					align = append(align, alignNames[cell.Alignment])
				}
			}
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n#table(\n\tcolumns: %d,\n\talign: (%s),\n", columns, strings.Join(align, ", "))
	for _, r := range t.Nodes {
		b.WriteString("\t" + ast.Convert(r, c) + "\n")
	}
	b.WriteString(")\n")
	return b.String()
}

func (c Converter) ConvertTableRow(r *ast.TableRow) string {
	var b strings.Builder
	for _, n := range r.Nodes {
		b.WriteString("[" + ast.Convert(n, c) + "], ")
	}
	if r.IsHeader {
		return "table.header(" + b.String() + "),"
	}
	return b.String()
}

func (c Converter) ConvertTableCell(cell *ast.TableCell) string { return c.children(cell) }
