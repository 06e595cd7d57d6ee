package ast

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Document {
	return &Document{Branch{[]Node{
		&Heading{Branch{[]Node{&Text{Value: "Title"}}}, 1},
		&Paragraph{Branch{[]Node{
			&Text{Value: "some "},
			&Bold{Branch{[]Node{&Text{Value: "bold"}}}},
			&Text{Value: " and "},
			&InlineCode{Code: "code"},
		}}},
		&Blockquote{Branch{[]Node{&Text{Value: "quoted"}}}},
		&LineBreak{},
	}}}
}

func TestWalkOrder(t *testing.T) {
	var kinds []Kind
	err := Walk(sample(), func(n Node) error {
		kinds = append(kinds, n.Kind())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		KindDocument,
		KindHeading, KindText,
		KindParagraph, KindText, KindBold, KindText, KindText, KindInlineCode,
		KindBlockquote, KindText,
		KindLineBreak,
	}, kinds)
}

func TestWalkSkip(t *testing.T) {
	var kinds []Kind
	err := Walk(sample(), func(n Node) error {
		kinds = append(kinds, n.Kind())
		if n.Kind() == KindParagraph || n.Kind() == KindHeading {
			return ErrSkip
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindDocument, KindHeading, KindParagraph, KindBlockquote, KindText, KindLineBreak}, kinds)
}

func TestWalkStop(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	err := Walk(sample(), func(n Node) error {
		visited++
		if n.Kind() == KindBold {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 6, visited)
}

func TestWalkNil(t *testing.T) {
	assert.NoError(t, Walk(nil, func(Node) error { return errors.New("called") }))
}

func TestCount(t *testing.T) {
	m := Count(sample())
	assert.Equal(t, 5, m[KindText])
	assert.Equal(t, 1, m[KindDocument])
	assert.Equal(t, 1, m[KindInlineCode])
	assert.Zero(t, m[KindTable])
}

func TestDump(t *testing.T) {
	doc := &Document{Branch{[]Node{&Heading{Branch{[]Node{&Text{Value: "Title"}}}, 2}}}}
	d := Dump(doc)
	assert.Contains(t, d, "Level: 2")
	assert.Contains(t, d, `Value: "Title"`)
	assert.True(t, strings.Count(d, "\n") > 1)

	c := DumpCompact(doc)
	assert.NotContains(t, c, "\n")
	assert.Contains(t, c, `"Title"`)
}
