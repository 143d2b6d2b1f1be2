package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prettylisp/pprint/pprint"
)

func renderDemo(t *testing.T, margin int, src string) string {
	t.Helper()
	forms, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	tbl := newDemoTable()
	buf := &bytes.Buffer{}
	err = pprint.NewStreamTo(buf, pprint.Config{RightMargin: margin}, func(s *pprint.Stream) error {
		for i, form := range forms {
			if i > 0 {
				if err := s.Mandatory(); err != nil {
					return err
				}
			}
			if err := pprint.OutputPretty(form, s, tbl); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("NewStreamTo: %v", err)
	}
	return buf.String()
}

func TestDemoPrintsShortListInline(t *testing.T) {
	got := renderDemo(t, 40, "(a b c)")
	if got != "(a b c)" {
		t.Errorf("got %q, want %q", got, "(a b c)")
	}
}

func TestDemoQuoteFastPath(t *testing.T) {
	got := renderDemo(t, 40, "'x")
	if got != "'x" {
		t.Errorf("got %q, want %q", got, "'x")
	}
}

func TestDemoStringsAreQuoted(t *testing.T) {
	got := renderDemo(t, 40, `("hi there")`)
	if got != `("hi there")` {
		t.Errorf("got %q, want %q", got, `("hi there")`)
	}
}

func TestDemoNumberFormatting(t *testing.T) {
	got := renderDemo(t, 40, "(1 2.5 3)")
	if got != "(1 2.5 3)" {
		t.Errorf("got %q, want %q", got, "(1 2.5 3)")
	}
}

func TestDemoVectorUsesVectorDelimiters(t *testing.T) {
	got := renderDemo(t, 40, "#(1 2 3)")
	if len(got) < 2 || got[:2] != "#(" || got[len(got)-1] != ')' {
		t.Errorf("expected vector delimiters, got %q", got)
	}
	// printVector tabs each element to an 8-column stop, so elements
	// past the first are separated by more than the single literal
	// space written before the tab.
	if !strings.Contains(got, "  ") {
		t.Errorf("expected tab-expanded padding between vector elements, got %q", got)
	}
}
