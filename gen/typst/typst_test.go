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

package typst_test

import (
	"strings"
	"testing"

	"akhil.cc/markconv/gen/typst"
	"akhil.cc/markconv/internal/difftest"
	"akhil.cc/markconv/parser"
)

var convertSmall = []struct {
	in   string
	want string
}{
	{"# Hi\n", "\n= Hi <hi>\n\n"},
	{"### A b\n", "\n=== A b <a-b>\n\n"},
	{"a-b\n", "\na\\-b\n\n\n"},
	{"**b** *i* ~~s~~\n", "\n*b* _i_ #strike[s]\n\n\n"},
	{"- a\n  - b\n", "\n- a\n\t\n\t- b\n\n"},
	{"1. x\n", "\n1. x\n\n"},
	{"- [x] t\n", "\n+ [x] t\n\n"},
	{"`a\"b`\n", "\n#raw(\"a\\\"b\")\n\n\n"},
	{"![c](x.png)\n", "\n#image(\"x.png\", alt: \"c\")\n\n\n"},
	{"![](x.png)\n", "\n#image(\"x.png\")\n\n\n"},
	{"[go](https://go.dev)\n", "\n#link(\"https://go.dev\")[go]\n\n\n"},
	{"---\n", "#line(length: 100%)\n"},
	{"```py\nx\n```\n", "```py\nx\n```\n\n"},
	{"> q\n", "#quote[q\n]\n"},
	{"|a|b|\n|:-:|-:|\n|1|2|\n", "\n#table(\n\tcolumns: 2,\n\talign: (center, right),\n\ttable.header([a], [b], ),\n\t[1], [2], \n)\n\n"},
}

func TestConvert(t *testing.T) {
	for _, test := range convertSmall {
		got := typst.Convert(parser.MustParse(strings.NewReader(test.in)))
		difftest.Check(t, test.in, test.want, got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct{ in, want string }{
		{"#tag", `\#tag`},
		{"a _b", `a \_b`},
		{"snake_case", "snake_case"},
		{`"q"`, `\"q\"`},
		{"1+1=2", `1\+1\=2`},
	}
	for _, test := range tests {
		if got := typst.Escape(test.in); got != test.want {
			t.Errorf("Escape(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
