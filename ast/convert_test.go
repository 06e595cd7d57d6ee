package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tagger wraps headings and bold text and leaves everything else to
// ConvertDefault.
type tagger struct{ defaults []Kind }

func (v *tagger) ConvertDefault(n Node) string {
	v.defaults = append(v.defaults, n.Kind())
	if t, ok := n.(*Text); ok {
		return t.Value
	}
	return ConvertChildren(n, v)
}

func (v *tagger) ConvertHeading(h *Heading) string {
	return fmt.Sprintf("<h%d>%s</h%d>", h.Level, ConvertChildren(h, v), h.Level)
}

func (v *tagger) ConvertBold(b *Bold) string {
	return "<b>" + ConvertChildren(b, v) + "</b>"
}

func TestConvertDispatch(t *testing.T) {
	v := new(tagger)
	doc := &Document{Branch{[]Node{
		&Heading{Branch{[]Node{&Text{Value: "T"}}}, 3},
		&Paragraph{Branch{[]Node{
			&Text{Value: "a "},
			&Bold{Branch{[]Node{&Text{Value: "b"}}}},
		}}},
	}}}
	assert.Equal(t, "<h3>T</h3>a <b>b</b>", doc.Convert(v))
	assert.Equal(t, []Kind{KindDocument, KindText, KindParagraph, KindText, KindText}, v.defaults)
}

func TestPlainText(t *testing.T) {
	p := &Paragraph{Branch{[]Node{
		&Text{Value: "see "},
		&Link{Branch{[]Node{&Text{Value: "here"}}}, "https://example.com"},
		&Text{Value: ", "},
		&Image{Source: "a.png", AltText: "pic"},
		&Text{Value: " or "},
		&InlineCode{Code: "x := 1"},
		&HorizontalRule{},
	}}}
	assert.Equal(t, "see here, pic or x := 1", PlainText(p))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Heading", KindHeading.String())
	assert.Equal(t, "TableCell", KindTableCell.String())
	assert.Equal(t, "ordered", Ordered.String())
	assert.Equal(t, "center", Center.String())
}
