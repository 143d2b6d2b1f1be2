package pprint

import "testing"

func TestSetCharOutHookFiresOnceBeforeStorage(t *testing.T) {
	s, buf := newTestStream(80)
	var seen []rune
	s.SetCharOutHook(func(r rune) { seen = append(seen, r) })

	if err := s.WriteString("ab"); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != 'a' {
		t.Errorf("hook fired on %v, want just ['a']", seen)
	}
	if got := buf.String(); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestIndentBlockRelativeToBlockStart(t *testing.T) {
	s, buf := newTestStream(2)
	if err := s.StartLogicalBlock("(", false, ")"); err != nil {
		t.Fatal(err)
	}
	if err := s.Indent(IndentBlock, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Linear(); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("b"); err != nil {
		t.Fatal(err)
	}
	if err := s.EndLogicalBlock(); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "(a\n   b)"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIndentCurrentRelativeToCurrentColumn(t *testing.T) {
	s, buf := newTestStream(2)
	if err := s.StartLogicalBlock("(", false, ")"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("ab"); err != nil {
		t.Fatal(err)
	}
	if err := s.Indent(IndentCurrent, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Linear(); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("c"); err != nil {
		t.Fatal(err)
	}
	if err := s.EndLogicalBlock(); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	// Current column when Indent fired was 3 ("(ab"); +1 = 4 spaces.
	want := "(ab\n    c)"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteStringSplitsEmbeddedNewlineIntoLiteral(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.WriteString("a\nb"); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a\nb" {
		t.Errorf("got %q, want %q", got, "a\nb")
	}
}

func TestFillLinearMiserMandatoryConvenienceMethods(t *testing.T) {
	s, _ := newTestStream(80)
	for _, fn := range []func() error{s.Fill, s.Linear, s.Miser, s.Mandatory} {
		if err := fn(); err != nil {
			t.Errorf("convenience newline method returned error: %v", err)
		}
	}
}

func TestFlushIsIdempotentAPI(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.WriteString("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	first := buf.String()
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != first {
		t.Errorf("second Flush changed output: %q -> %q", first, buf.String())
	}
}

func TestEndLogicalBlockWithNoOpenBlockIsNoop(t *testing.T) {
	s, _ := newTestStream(80)
	if err := s.EndLogicalBlock(); err != nil {
		t.Errorf("EndLogicalBlock on empty stack returned error: %v", err)
	}
}

func TestStartLogicalBlockDoesNotResolveOuterSectionEnd(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.StartLogicalBlock("(", false, ")"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("outer"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString(" "); err != nil {
		t.Fatal(err)
	}
	if err := s.Fill(); err != nil {
		t.Fatal(err)
	}
	var fillOp *operation
	for _, op := range s.queue.ops {
		if op != nil && op.kind == opNewline && op.newlineKind == NewlineFill {
			fillOp = op
		}
	}
	if fillOp == nil {
		t.Fatal("expected the Fill newline still queued behind the open outer block")
	}

	// A nested block opening at the same depth must not be mistaken for
	// the Fill's section end - only a later Newline or BlockEnd may
	// resolve it.
	if err := s.StartLogicalBlock("[", false, "]"); err != nil {
		t.Fatal(err)
	}
	if fillOp.sectionEnd != nil {
		t.Errorf("starting a nested block resolved the outer Fill's sectionEnd to %+v, want nil", fillOp.sectionEnd)
	}

	if err := s.WriteString("inner"); err != nil {
		t.Fatal(err)
	}
	if err := s.EndLogicalBlock(); err != nil {
		t.Fatal(err)
	}
	if fillOp.sectionEnd == nil || fillOp.sectionEnd.kind != opBlockEnd {
		t.Errorf("expected the inner block's own end to resolve the outer Fill's sectionEnd, got %+v", fillOp.sectionEnd)
	}

	if err := s.EndLogicalBlock(); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "(outer [inner])"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStartLogicalBlockWritesPrefixImmediately(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.StartLogicalBlock("<<", false, ">>"); err != nil {
		t.Fatal(err)
	}
	if err := s.EndLogicalBlock(); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<<>>" {
		t.Errorf("got %q, want %q", got, "<<>>")
	}
}
