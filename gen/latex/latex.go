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

// Package latex converts a document tree into a standalone LaTeX article.
//
// Nodes correspond to the following LaTeX constructs:
// 	Heading (levels 1-3)        \section, \subsection, \subsubsection
// 	Heading (levels 4-6)        \paragraph
// 	Bold, Italic, Strike        \textbf, \textit, \sout
// 	Blockquote                  quote environment
// 	List                        itemize or enumerate
// 	TaskListItem                \item[$\boxtimes$] or \item[$\square$]
// 	CodeBlock                   lstlisting
// 	InlineCode                  \texttt
// 	Image                       figure with \includegraphics
// 	Link                        \href
// 	HorizontalRule              \rule
// 	Table                       booktabs tabular
package latex // import "akhil.cc/markconv/gen/latex"

import (
	"fmt"
	"strings"

	"akhil.cc/markconv/ast"
	"github.com/shurcooL/sanitized_anchor_name"
)

const preamble = `\documentclass{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{hyperref}
\usepackage{graphicx}
\usepackage[normalem]{ulem}
\usepackage{listings}
\usepackage{booktabs}
\usepackage{xcolor}
\usepackage{amssymb}
\begin{document}
`

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape quotes the LaTeX special characters in s.
func Escape(s string) string { return escaper.Replace(s) }

// Converter renders nodes as LaTeX. The zero value is ready to use.
type Converter struct {
	// Fragment omits the article preamble and closing.
	Fragment bool
}

// Convert renders doc as a complete LaTeX document.
func Convert(doc *ast.Document) string {
	return ast.Convert(doc, Converter{})
}

func (c Converter) children(n ast.Node) string { return ast.ConvertChildren(n, c) }

func (c Converter) ConvertDefault(n ast.Node) string { return c.children(n) }

func (c Converter) ConvertDocument(d *ast.Document) string {
	if c.Fragment {
		return c.children(d)
	}
	return preamble + c.children(d) + "\n\\end{document}\n"
}

var sections = [...]string{1: "section", 2: "subsection", 3: "subsubsection"}

func (c Converter) ConvertHeading(h *ast.Heading) string {
	cmd := "paragraph"
	if h.Level > 0 && h.Level < len(sections) {
		cmd = sections[h.Level]
	}
	label := sanitized_anchor_name.Create(ast.PlainText(h))
	return fmt.Sprintf("\\%s{%s}\\label{sec:%s}\n\n", cmd, c.children(h), label)
}

func (c Converter) ConvertParagraph(p *ast.Paragraph) string { return c.children(p) + "\n\n" }

func (c Converter) ConvertText(t *ast.Text) string { return Escape(t.Value) }

func (c Converter) ConvertBold(b *ast.Bold) string { return `\textbf{` + c.children(b) + "}" }

func (c Converter) ConvertItalic(i *ast.Italic) string { return `\textit{` + c.children(i) + "}" }

func (c Converter) ConvertStrike(s *ast.Strike) string { return `\sout{` + c.children(s) + "}" }

func (c Converter) ConvertLineBreak(*ast.LineBreak) string { return "\n\n" }

func (c Converter) ConvertBlockquote(q *ast.Blockquote) string {
	return "\\begin{quote}\n" + c.children(q) + "\\end{quote}\n\n"
}

func (c Converter) ConvertList(l *ast.List) string {
	env := "enumerate"
	if l.Type == ast.Unordered {
		env = "itemize"
	}
	return fmt.Sprintf("\\begin{%s}\n%s\\end{%s}\n\n", env, c.children(l), env)
}

func (c Converter) ConvertListItem(i *ast.ListItem) string {
	return "  \\item " + strings.TrimRight(c.children(i), "\n") + "\n"
}

func (c Converter) ConvertTaskListItem(i *ast.TaskListItem) string {
	box := `$\square$`
	if i.Checked {
		box = `$\boxtimes$`
	}
	return "  \\item[" + box + "] " + strings.TrimRight(c.children(i), "\n") + "\n"
}

func (c Converter) ConvertCodeBlock(b *ast.CodeBlock) string {
	lang := b.Language
	if lang == "" {
		lang = "text"
	}
	return fmt.Sprintf("\\begin{lstlisting}[language=%s]\n%s\\end{lstlisting}\n\n", lang, b.Code)
}

func (c Converter) ConvertInlineCode(i *ast.InlineCode) string {
	return `\texttt{` + Escape(i.Code) + "}"
}

func (c Converter) ConvertImage(i *ast.Image) string {
	return "\\begin{figure}[h]\n" +
		"  \\centering\n" +
		"  \\includegraphics[width=\\linewidth]{" + i.Source + "}\n" +
		"  \\caption{" + Escape(i.AltText) + "}\n" +
		"\\end{figure}\n\n"
}

func (c Converter) ConvertLink(l *ast.Link) string {
	text := c.children(l)
	if text == "" {
		text = Escape(l.Source)
	}
	return `\href{` + l.Source + "}{" + text + "}"
}

func (c Converter) ConvertHorizontalRule(*ast.HorizontalRule) string {
	return "\\noindent\\rule{\\linewidth}{0.4pt}\n\n"
}

var columnSpec = map[ast.Alignment]string{ast.Left: "l", ast.Center: "c", ast.Right: "r"}

func (c Converter) ConvertTable(t *ast.Table) string {
	if len(t.Nodes) == 0 {
		return ""
	}
	var spec []string
	for _, n := range t.Nodes[0].Children() {
		if cell, ok := n.(*ast.TableCell); ok {
			spec = append(spec, columnSpec[cell.Alignment])
		}
	}
	rows := []string{`\toprule`}
	for _, n := range t.Nodes {
		rows = append(rows, ast.Convert(n, c))
		if r, ok := n.(*ast.TableRow); ok && r.IsHeader {
			rows = append(rows, `\midrule`)
		}
	}
	rows = append(rows, `\bottomrule`)
	return fmt.Sprintf("\\begin{tabular}{%s}\n%s\n\\end{tabular}\n\n", strings.Join(spec, ""), strings.Join(rows, "\n"))
}

func (c Converter) ConvertTableRow(r *ast.TableRow) string {
	cells := make([]string, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		s := ast.Convert(n, c)
		if r.IsHeader {
			s = `\textbf{` + s + "}"
		}
		cells = append(cells, s)
	}
	return strings.Join(cells, " & ") + ` \\`
}

func (c Converter) ConvertTableCell(cell *ast.TableCell) string { return c.children(cell) }
