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

package main

import (
	"io"
	"strings"

	"akhil.cc/markconv/registry"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6188"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD866")).Width(12)
	aliasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#727072"))
)

func renderFormats(title string, fs []registry.Format) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	for _, f := range fs {
		line := "  " + nameStyle.Render(f.Name)
		if len(f.Aliases) > 0 {
			line += aliasStyle.Render("(" + strings.Join(f.Aliases, ", ") + ")")
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}

func newFormatsCmd(reg *registry.Registry, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list-formats",
		Short: "List the registered source and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := renderFormats("Source formats", reg.Parsers()) + "\n" +
				renderFormats("Output formats", reg.Converters())
			_, err := io.WriteString(stdout, out)
			return err
		},
	}
}
