package ast

import (
	"errors"

	"github.com/sanity-io/litter"
)

// ErrSkip may be returned by a Walker to skip the children of the current node.
var ErrSkip = errors.New("skip children")

type Walker func(Node) error

// Walk visits n and its descendants in pre-order. It stops at the first
// error returned by f, other than ErrSkip, and returns it.
func Walk(n Node, f Walker) error {
	if n == nil {
		return nil
	}
	if e := f(n); e != nil {
		if e == ErrSkip {
			return nil
		}
		return e
	}
	for _, c := range n.Children() {
		if e := Walk(c, f); e != nil {
			return e
		}
	}
	return nil
}

// Count returns the number of nodes of each kind in the tree rooted at n.
func Count(n Node) map[Kind]int {
	m := make(map[Kind]int)
	Walk(n, func(c Node) error {
		m[c.Kind()]++
		return nil
	})
	return m
}

var dumpCfg = litter.Options{
	StripPackageNames: false,
	HidePrivateFields: true,
	HideZeroValues:    true,
	Separator:         " ",
}

// Dump returns a Go-syntax rendering of the tree rooted at n.
func Dump(n Node) string {
	return dumpCfg.Sdump(n)
}

// DumpCompact is like Dump but renders the tree on a single line.
func DumpCompact(n Node) string {
	cfg := dumpCfg
	cfg.Compact = true
	return cfg.Sdump(n)
}
