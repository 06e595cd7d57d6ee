// Package difftest reports differences between expected and actual
// converter output as unified diffs.
package difftest

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from want to got, or "" when they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return d
}

// Check fails t with a diff when got differs from want.
func Check(t testing.TB, name, want, got string) {
	t.Helper()
	if d := Diff(want, got); d != "" {
		t.Errorf("%s: output differs\n%s\nwant %q\ngot  %q", name, d, want, got)
	}
}
