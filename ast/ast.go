// Package ast declares the types used to represent the tree produced by a
// markup parser and consumed by the output converters.
//
// The node set is closed: every concrete type lives in this package and the
// Node interface cannot be implemented elsewhere. Trees are built once by a
// parser and are treated as read-only afterwards.
package ast // import "akhil.cc/markconv/ast"

//go:generate sumgen Node = *Document | *Heading | *Bold | *Italic | *Strike | *Text | *Paragraph | *LineBreak | *Blockquote | *List | *ListItem | *TaskListItem | *CodeBlock | *InlineCode | *Image | *Link | *HorizontalRule | *Table | *TableRow | *TableCell
type Node interface {
	Kind() Kind
	Children() []Node
	Convert(v Visitor) string
	node()
}

type Kind int

const (
	KindDocument Kind = iota
	KindHeading
	KindBold
	KindItalic
	KindStrike
	KindText
	KindParagraph
	KindLineBreak
	KindBlockquote
	KindList
	KindListItem
	KindTaskListItem
	KindCodeBlock
	KindInlineCode
	KindImage
	KindLink
	KindHorizontalRule
	KindTable
	KindTableRow
	KindTableCell
)

var kindNames = [...]string{
	KindDocument:       "Document",
	KindHeading:        "Heading",
	KindBold:           "Bold",
	KindItalic:         "Italic",
	KindStrike:         "Strike",
	KindText:           "Text",
	KindParagraph:      "Paragraph",
	KindLineBreak:      "LineBreak",
	KindBlockquote:     "Blockquote",
	KindList:           "List",
	KindListItem:       "ListItem",
	KindTaskListItem:   "TaskListItem",
	KindCodeBlock:      "CodeBlock",
	KindInlineCode:     "InlineCode",
	KindImage:          "Image",
	KindLink:           "Link",
	KindHorizontalRule: "HorizontalRule",
	KindTable:          "Table",
	KindTableRow:       "TableRow",
	KindTableCell:      "TableCell",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Branch holds the ordered children of a composite node.
type Branch struct {
	Nodes []Node
}

func (b *Branch) Children() []Node { return b.Nodes }

// Leaf is embedded by nodes that never have children.
type Leaf struct{}

func (Leaf) Children() []Node { return nil }

type ListType int

const (
	Unordered ListType = iota
	Ordered
	Task
)

func (t ListType) String() string {
	switch t {
	case Ordered:
		return "ordered"
	case Task:
		return "task"
	}
	return "unordered"
}

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "left"
}

type Document struct{ Branch }

// Heading has a Level between 1 and 6.
type Heading struct {
	Branch
	Level int
}

type Bold struct{ Branch }

type Italic struct{ Branch }

type Strike struct{ Branch }

type Text struct {
	Leaf
	Value string
}

type Paragraph struct{ Branch }

type LineBreak struct{ Leaf }

type Blockquote struct{ Branch }

// List holds ListItem or TaskListItem children. Type is decided by the
// first item of the list.
type List struct {
	Branch
	Type ListType
}

// ListItem is a list entry. Order carries the number written in an ordered
// marker and is only meaningful when Numbered is set.
type ListItem struct {
	Branch
	Order    int
	Numbered bool
}

type TaskListItem struct {
	ListItem
	Checked bool
}

// CodeBlock is a fenced block. Code is the verbatim text between the fences.
type CodeBlock struct {
	Leaf
	Code     string
	Language string
}

type InlineCode struct {
	Leaf
	Code string
}

type Image struct {
	Leaf
	Source  string
	AltText string
}

type Link struct {
	Branch
	Source string
}

type HorizontalRule struct{ Leaf }

// Table rows all have the same number of cells; the first row is the header.
type Table struct{ Branch }

type TableRow struct {
	Branch
	IsHeader bool
}

type TableCell struct {
	Branch
	Alignment Alignment
}

func (*Document) Kind() Kind       { return KindDocument }
func (*Heading) Kind() Kind        { return KindHeading }
func (*Bold) Kind() Kind           { return KindBold }
func (*Italic) Kind() Kind         { return KindItalic }
func (*Strike) Kind() Kind         { return KindStrike }
func (*Text) Kind() Kind           { return KindText }
func (*Paragraph) Kind() Kind      { return KindParagraph }
func (*LineBreak) Kind() Kind      { return KindLineBreak }
func (*Blockquote) Kind() Kind     { return KindBlockquote }
func (*List) Kind() Kind           { return KindList }
func (*ListItem) Kind() Kind       { return KindListItem }
func (*TaskListItem) Kind() Kind   { return KindTaskListItem }
func (*CodeBlock) Kind() Kind      { return KindCodeBlock }
func (*InlineCode) Kind() Kind     { return KindInlineCode }
func (*Image) Kind() Kind          { return KindImage }
func (*Link) Kind() Kind           { return KindLink }
func (*HorizontalRule) Kind() Kind { return KindHorizontalRule }
func (*Table) Kind() Kind          { return KindTable }
func (*TableRow) Kind() Kind       { return KindTableRow }
func (*TableCell) Kind() Kind      { return KindTableCell }

func (n *Document) Convert(v Visitor) string       { return Convert(n, v) }
func (n *Heading) Convert(v Visitor) string        { return Convert(n, v) }
func (n *Bold) Convert(v Visitor) string           { return Convert(n, v) }
func (n *Italic) Convert(v Visitor) string         { return Convert(n, v) }
func (n *Strike) Convert(v Visitor) string         { return Convert(n, v) }
func (n *Text) Convert(v Visitor) string           { return Convert(n, v) }
func (n *Paragraph) Convert(v Visitor) string      { return Convert(n, v) }
func (n *LineBreak) Convert(v Visitor) string      { return Convert(n, v) }
func (n *Blockquote) Convert(v Visitor) string     { return Convert(n, v) }
func (n *List) Convert(v Visitor) string           { return Convert(n, v) }
func (n *ListItem) Convert(v Visitor) string       { return Convert(n, v) }
func (n *TaskListItem) Convert(v Visitor) string   { return Convert(n, v) }
func (n *CodeBlock) Convert(v Visitor) string      { return Convert(n, v) }
func (n *InlineCode) Convert(v Visitor) string     { return Convert(n, v) }
func (n *Image) Convert(v Visitor) string          { return Convert(n, v) }
func (n *Link) Convert(v Visitor) string           { return Convert(n, v) }
func (n *HorizontalRule) Convert(v Visitor) string { return Convert(n, v) }
func (n *Table) Convert(v Visitor) string          { return Convert(n, v) }
func (n *TableRow) Convert(v Visitor) string       { return Convert(n, v) }
func (n *TableCell) Convert(v Visitor) string      { return Convert(n, v) }

func (*Document) node()       {}
func (*Heading) node()        {}
func (*Bold) node()           {}
func (*Italic) node()         {}
func (*Strike) node()         {}
func (*Text) node()           {}
func (*Paragraph) node()      {}
func (*LineBreak) node()      {}
func (*Blockquote) node()     {}
func (*List) node()           {}
func (*ListItem) node()       {}
func (*TaskListItem) node()   {}
func (*CodeBlock) node()      {}
func (*InlineCode) node()     {}
func (*Image) node()          {}
func (*Link) node()           {}
func (*HorizontalRule) node() {}
func (*Table) node()          {}
func (*TableRow) node()       {}
func (*TableCell) node()      {}
