package ast

import "strings"

// A Visitor turns nodes into output text. ConvertDefault is called for every
// node kind the visitor does not handle itself; a visitor opts into a kind by
// also implementing the matching XxxConverter interface below.
type Visitor interface {
	ConvertDefault(n Node) string
}

type (
	DocumentConverter       interface{ ConvertDocument(*Document) string }
	HeadingConverter        interface{ ConvertHeading(*Heading) string }
	BoldConverter           interface{ ConvertBold(*Bold) string }
	ItalicConverter         interface{ ConvertItalic(*Italic) string }
	StrikeConverter         interface{ ConvertStrike(*Strike) string }
	TextConverter           interface{ ConvertText(*Text) string }
	ParagraphConverter      interface{ ConvertParagraph(*Paragraph) string }
	LineBreakConverter      interface{ ConvertLineBreak(*LineBreak) string }
	BlockquoteConverter     interface{ ConvertBlockquote(*Blockquote) string }
	ListConverter           interface{ ConvertList(*List) string }
	ListItemConverter       interface{ ConvertListItem(*ListItem) string }
	TaskListItemConverter   interface{ ConvertTaskListItem(*TaskListItem) string }
	CodeBlockConverter      interface{ ConvertCodeBlock(*CodeBlock) string }
	InlineCodeConverter     interface{ ConvertInlineCode(*InlineCode) string }
	ImageConverter          interface{ ConvertImage(*Image) string }
	LinkConverter           interface{ ConvertLink(*Link) string }
	HorizontalRuleConverter interface{ ConvertHorizontalRule(*HorizontalRule) string }
	TableConverter          interface{ ConvertTable(*Table) string }
	TableRowConverter       interface{ ConvertTableRow(*TableRow) string }
	TableCellConverter      interface{ ConvertTableCell(*TableCell) string }
)

// Convert calls exactly one method of v for n: the kind-specific one if v
// implements it, ConvertDefault otherwise.
func Convert(n Node, v Visitor) string {
	switch t := n.(type) {
	case *Document:
		if c, ok := v.(DocumentConverter); ok {
			return c.ConvertDocument(t)
		}
	case *Heading:
		if c, ok := v.(HeadingConverter); ok {
			return c.ConvertHeading(t)
		}
	case *Bold:
		if c, ok := v.(BoldConverter); ok {
			return c.ConvertBold(t)
		}
	case *Italic:
		if c, ok := v.(ItalicConverter); ok {
			return c.ConvertItalic(t)
		}
	case *Strike:
		if c, ok := v.(StrikeConverter); ok {
			return c.ConvertStrike(t)
		}
	case *Text:
		if c, ok := v.(TextConverter); ok {
			return c.ConvertText(t)
		}
	case *Paragraph:
		if c, ok := v.(ParagraphConverter); ok {
			return c.ConvertParagraph(t)
		}
	case *LineBreak:
		if c, ok := v.(LineBreakConverter); ok {
			return c.ConvertLineBreak(t)
		}
	case *Blockquote:
		if c, ok := v.(BlockquoteConverter); ok {
			return c.ConvertBlockquote(t)
		}
	case *List:
		if c, ok := v.(ListConverter); ok {
			return c.ConvertList(t)
		}
	case *ListItem:
		if c, ok := v.(ListItemConverter); ok {
			return c.ConvertListItem(t)
		}
	case *TaskListItem:
		if c, ok := v.(TaskListItemConverter); ok {
			return c.ConvertTaskListItem(t)
		}
	case *CodeBlock:
		if c, ok := v.(CodeBlockConverter); ok {
			return c.ConvertCodeBlock(t)
		}
	case *InlineCode:
		if c, ok := v.(InlineCodeConverter); ok {
			return c.ConvertInlineCode(t)
		}
	case *Image:
		if c, ok := v.(ImageConverter); ok {
			return c.ConvertImage(t)
		}
	case *Link:
		if c, ok := v.(LinkConverter); ok {
			return c.ConvertLink(t)
		}
	case *HorizontalRule:
		if c, ok := v.(HorizontalRuleConverter); ok {
			return c.ConvertHorizontalRule(t)
		}
	case *Table:
		if c, ok := v.(TableConverter); ok {
			return c.ConvertTable(t)
		}
	case *TableRow:
		if c, ok := v.(TableRowConverter); ok {
			return c.ConvertTableRow(t)
		}
	case *TableCell:
		if c, ok := v.(TableCellConverter); ok {
			return c.ConvertTableCell(t)
		}
	}
	return v.ConvertDefault(n)
}

// ConvertChildren concatenates the conversion of every child of n.
func ConvertChildren(n Node, v Visitor) string {
	var b strings.Builder
	for _, c := range n.Children() {
		b.WriteString(Convert(c, v))
	}
	return b.String()
}

// Concat is a Visitor without kind-specific methods. Converting a tree with
// it yields the concatenation of its Text values and code.
type Concat struct{}

func (c Concat) ConvertDefault(n Node) string {
	switch t := n.(type) {
	case *Text:
		return t.Value
	case *InlineCode:
		return t.Code
	case *CodeBlock:
		return t.Code
	case *Image:
		return t.AltText
	}
	return ConvertChildren(n, c)
}

// PlainText returns the text content of n.
func PlainText(n Node) string {
	return Convert(n, Concat{})
}
