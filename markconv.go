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

// This CLI utility converts markup source files between formats. A
// Markdown source is parsed into a syntax tree, which an output
// converter renders as LaTeX, Typst or HTML.
//
// Usage:
//   markconv [command]
//
// Available Commands:
//   config       Manage the configuration file
//   convert      Convert a source file to another markup format
//   help         Help about any command
//   list-formats List the registered source and output formats
//   parse        Print the syntax tree of a source file
//
// Flags:
//   -h, --help   help for markconv
//
// Use "markconv [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"akhil.cc/markconv/ast"
	"akhil.cc/markconv/config"
	"akhil.cc/markconv/gen"
	"akhil.cc/markconv/internal/logger"
	"akhil.cc/markconv/registry"
	"github.com/spf13/cobra"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

// ext returns the extension of name without its dot.
func ext(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

func open(stdin io.Reader, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, "<stdin>", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, err
	}
	return f, args[0], func() { f.Close() }, nil
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	return string(b), err
}

func countNodes(doc *ast.Document) int {
	n := 0
	for _, c := range ast.Count(doc) {
		n += c
	}
	return n
}

type convertFlags struct {
	from, to   string
	outputfile string
	filter     string
	configfile string
	timeout    time.Duration
	verbose    bool
}

func newConvertCmd(reg *registry.Registry, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var fl convertFlags
	prefixConvert := "(convert) "
	cmd := &cobra.Command{
		Use:   "convert [input] [-t format] [-o output]",
		Short: "Convert a source file to another markup format",
		Long: `This command parses a source file and renders its syntax tree
with the converter for the target format.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.

The source format defaults to the input file extension, then to the
configuration file. The target format defaults to the output file
extension, then to the configuration file. A filter command is parsed
according to the Bourne shell's word-splitting rules and receives the
converted document on its standard input.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runConvert(reg, fl, args, stdin, stdout, stderr); err != nil {
				return prefix(prefixConvert, err)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixConvert, err)
		}
		return nil
	})
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	cmd.Flags().StringVarP(&fl.to, "to", "t", "", "``target format")
	cmd.Flags().StringVarP(&fl.from, "from", "f", "", "``source format")
	cmd.Flags().StringVarP(&fl.outputfile, "output", "o", "", "``name of the output file")
	cmd.Flags().StringVar(&fl.filter, "filter", "", "``command the converted document is piped through")
	cmd.Flags().DurationVar(&fl.timeout, "timeout", 0, "``timeout used to halt a long-running filter command")
	cmd.Flags().StringVar(&fl.configfile, "config", "", "``path of the configuration file")
	cmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "log debug output")
	return cmd
}

func runConvert(reg *registry.Registry, fl convertFlags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(fl.configfile)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if fl.verbose {
		level = "debug"
	}
	log, cleanup, err := logger.Open(stderr, level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer cleanup()
	log.ConfigLoaded(fl.configfile, cfg.From, cfg.To, cfg.Timeout)

	src, name, closeSrc, err := open(stdin, args)
	if err != nil {
		return err
	}
	defer closeSrc()

	from := fl.from
	if from == "" {
		if _, err := reg.Parser(ext(name)); err == nil && len(args) != 0 {
			from = ext(name)
		} else {
			from = cfg.From
		}
	}
	to := fl.to
	if to == "" {
		if _, err := reg.Converter(ext(fl.outputfile)); err == nil && fl.outputfile != "" {
			to = ext(fl.outputfile)
		} else {
			to = cfg.To
		}
	}
	p, err := reg.Parser(from)
	if err != nil {
		return err
	}
	conv, err := reg.Converter(to)
	if err != nil {
		return err
	}

	content, err := readAll(src)
	if err != nil {
		return err
	}
	start := time.Now()
	doc, err := p.Parse(content)
	if err != nil {
		log.ConversionFailed(name, to, err)
		return err
	}
	log.ParseCompleted(name, countNodes(doc), time.Since(start))

	out := stdout
	if fl.outputfile != "" {
		f, err := os.Create(fl.outputfile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	ctx := context.Background()
	timeout := cfg.Timeout
	if fl.timeout > 0 {
		timeout = fl.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	g := gen.GenContext(ctx, doc, gen.DocumentFunc(conv))
	g.Stdout = out
	g.Stderr = stderr
	g.Filter = cfg.Filter
	if fl.filter != "" {
		g.Filter = fl.filter
	}
	if err := g.Run(); err != nil {
		log.ConversionFailed(name, to, err)
		return err
	}
	log.ConversionCompleted(name, to, g.Written(), time.Since(start))
	return nil
}

func newParseCmd(reg *registry.Registry, stdin io.Reader, stdout io.Writer) *cobra.Command {
	var from string
	prefixParse := "(parse) "
	cmd := &cobra.Command{
		Use:   "parse [input] [-f format]",
		Short: "Print the syntax tree of a source file",
		Long: `This command parses a source file and prints its syntax tree,
in Go syntax. If no input file is specified,
input is read from standard input.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, closeSrc, err := open(stdin, args)
			if err != nil {
				return prefix(prefixParse, err)
			}
			defer closeSrc()
			if from == "" {
				from = "markdown"
				if _, err := reg.Parser(ext(name)); err == nil && len(args) != 0 {
					from = ext(name)
				}
			}
			p, err := reg.Parser(from)
			if err != nil {
				return prefix(prefixParse, err)
			}
			content, err := readAll(src)
			if err != nil {
				return prefix(prefixParse, err)
			}
			doc, err := p.Parse(content)
			if err != nil {
				return prefix(prefixParse, err)
			}
			_, err = io.WriteString(stdout, ast.Dump(doc)+"\n")
			return err
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "``source format")
	return cmd
}

func newConfigCmd(stdout io.Writer) *cobra.Command {
	var (
		path  string
		force bool
	)
	prefixConfig := "(config init) "
	initCmd := &cobra.Command{
		Use:   "init [--config path] [--force]",
		Short: "Write a configuration file with the default settings",
		Long: `This command writes the default configuration to the
configuration file, or to the path given with --config. An existing
file is left alone unless --force is set.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return prefix(prefixConfig, fmt.Errorf("%s already exists", path))
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return prefix(prefixConfig, err)
			}
			_, err := fmt.Fprintln(stdout, path)
			return err
		},
	}
	initCmd.Flags().StringVar(&path, "config", "", "``path of the configuration file")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(initCmd)
	return cmd
}

func newRootCmd(reg *registry.Registry, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "markconv [command]",
		Short: "conversion between markup formats",
		Long: `This CLI utility converts markup source files between formats.
A Markdown source is parsed into a syntax tree, which an output
converter renders as LaTeX, Typst or HTML.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.AddCommand(
		newConvertCmd(reg, stdin, stdout, stderr),
		newParseCmd(reg, stdin, stdout),
		newFormatsCmd(reg, stdout),
		newConfigCmd(stdout),
	)
	return rootCmd
}

func main() {
	rootCmd := newRootCmd(registry.Default(), os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
