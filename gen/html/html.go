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

// Package html converts a document tree into HTML output.
// All text and code is escaped. Headings carry an id derived from their
// text so they can be linked to.
//
// AST nodes correspond to the following HTML tags:
// 	Paragraph                   <p></p>
// 	Heading                     <h1></h1>, <h2></h2>, <h3></h3>, <h4></h4>, <h5></h5>, <h6></h6>
// 	Bold                        <strong></strong>
// 	Italic                      <em></em>
// 	Strike                      <s></s>
// 	LineBreak                   <br>
// 	Blockquote                  <blockquote></blockquote>
// 	List (unordered, task)      <ul></ul>
// 	List (ordered)              <ol></ol>
// 	ListItem                    <li></li>
// 	TaskListItem                <li class="task"><input type="checkbox" disabled></li>
// 	CodeBlock                   <pre><code class="language-x"></code></pre>
// 	InlineCode                  <code></code>
// 	Image                       <img>
// 	Link                        <a href=""></a>
// 	HorizontalRule              <hr>
// 	Table                       <table></table>
// 	TableRow                    <tr></tr>
// 	TableCell                   <th></th>, <td></td>
package html // import "akhil.cc/markconv/gen/html"

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"akhil.cc/markconv/ast"
	"github.com/shurcooL/sanitized_anchor_name"
)

// Converter renders nodes as HTML. The zero value is ready to use.
type Converter struct {
	// Standalone wraps the output in an html document with a head.
	Standalone bool
	Title      string
}

// Convert renders doc as an HTML fragment.
func Convert(doc *ast.Document) string {
	return ast.Convert(doc, Converter{})
}

func (c Converter) children(n ast.Node) string { return ast.ConvertChildren(n, c) }

func (c Converter) wrap(tag string, n ast.Node) string {
	return "<" + tag + ">" + c.children(n) + "</" + tag + ">"
}

func (c Converter) ConvertDefault(n ast.Node) string { return c.children(n) }

func (c Converter) ConvertDocument(d *ast.Document) string {
	if !c.Standalone {
		return c.children(d)
	}
	return "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>" +
		html.EscapeString(c.Title) + "</title>\n</head>\n<body>\n" +
		c.children(d) + "\n</body>\n</html>\n"
}

func (c Converter) ConvertHeading(h *ast.Heading) string {
	tag := "h" + strconv.Itoa(h.Level)
	id := sanitized_anchor_name.Create(ast.PlainText(h))
	return fmt.Sprintf("<%s id=%q>%s</%s>", tag, id, c.children(h), tag)
}

func (c Converter) ConvertParagraph(p *ast.Paragraph) string {
	return "<p>" + strings.TrimSuffix(c.children(p), "\n") + "</p>"
}

func (c Converter) ConvertText(t *ast.Text) string { return html.EscapeString(t.Value) }

func (c Converter) ConvertBold(b *ast.Bold) string { return c.wrap("strong", b) }

func (c Converter) ConvertItalic(i *ast.Italic) string { return c.wrap("em", i) }

func (c Converter) ConvertStrike(s *ast.Strike) string { return c.wrap("s", s) }

func (c Converter) ConvertLineBreak(*ast.LineBreak) string { return "<br>" }

func (c Converter) ConvertBlockquote(q *ast.Blockquote) string { return c.wrap("blockquote", q) }

func (c Converter) ConvertList(l *ast.List) string {
	if l.Type != ast.Ordered {
		return c.wrap("ul", l)
	}
	if len(l.Nodes) > 0 {
		if first, ok := l.Nodes[0].(*ast.ListItem); ok && first.Numbered && first.Order != 1 {
			return fmt.Sprintf("<ol start=\"%d\">%s</ol>", first.Order, c.children(l))
		}
	}
	return c.wrap("ol", l)
}

func (c Converter) ConvertListItem(i *ast.ListItem) string {
	return "<li>" + strings.TrimSuffix(c.children(i), "\n") + "</li>"
}

func (c Converter) ConvertTaskListItem(i *ast.TaskListItem) string {
	box := `<input type="checkbox" disabled>`
	if i.Checked {
		box = `<input type="checkbox" checked disabled>`
	}
	return `<li class="task">` + box + " " + strings.TrimSuffix(c.children(i), "\n") + "</li>"
}

func (c Converter) ConvertCodeBlock(b *ast.CodeBlock) string {
	if b.Language == "" {
		return "<pre><code>" + html.EscapeString(b.Code) + "</code></pre>"
	}
	return fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>", html.EscapeString(b.Language), html.EscapeString(b.Code))
}

func (c Converter) ConvertInlineCode(i *ast.InlineCode) string {
	return "<code>" + html.EscapeString(i.Code) + "</code>"
}

func (c Converter) ConvertImage(i *ast.Image) string {
	return fmt.Sprintf("<img src=\"%s\" alt=\"%s\">", html.EscapeString(i.Source), html.EscapeString(i.AltText))
}

func (c Converter) ConvertLink(l *ast.Link) string {
	return fmt.Sprintf("<a href=\"%s\">%s</a>", html.EscapeString(l.Source), c.children(l))
}

func (c Converter) ConvertHorizontalRule(*ast.HorizontalRule) string { return "<hr>" }

func (c Converter) ConvertTable(t *ast.Table) string {
	var head, body strings.Builder
	for _, n := range t.Nodes {
		if r, ok := n.(*ast.TableRow); ok && r.IsHeader {
			head.WriteString(ast.Convert(r, c))
			continue
		}
		body.WriteString(ast.Convert(n, c))
	}
	s := "<table>"
	if head.Len() > 0 {
		s += "<thead>" + head.String() + "</thead>"
	}
	if body.Len() > 0 {
		s += "<tbody>" + body.String() + "</tbody>"
	}
	return s + "</table>"
}

func (c Converter) ConvertTableRow(r *ast.TableRow) string {
	tag := "td"
	if r.IsHeader {
		tag = "th"
	}
	var b strings.Builder
	b.WriteString("<tr>")
	for _, n := range r.Nodes {
		cell, ok := n.(*ast.TableCell)
		if !ok {
			b.WriteString(ast.Convert(n, c))
			continue
		}
		fmt.Fprintf(&b, "<%s style=\"text-align:%s\">%s</%s>", tag, cell.Alignment, ast.Convert(cell, c), tag)
	}
	b.WriteString("</tr>")
	return b.String()
}

func (c Converter) ConvertTableCell(cell *ast.TableCell) string { return c.children(cell) }
