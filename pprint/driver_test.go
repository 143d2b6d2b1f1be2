package pprint

import "testing"

func TestFitsOnLineYesAndNo(t *testing.T) {
	s, _ := newTestStream(10)
	if err := s.WriteString("abcde"); err != nil { // column 5, margin 10: fits
		t.Fatal(err)
	}
	until := &operation{kind: opNewline, p: s.indexToPosn(s.bufferFill), newlineKind: NewlineFill, depth: 0}
	if got := s.fitsOnLine(until, false); got != fitYes {
		t.Errorf("fitsOnLine = %v, want fitYes", got)
	}

	s2, _ := newTestStream(4)
	if err := s2.WriteString("abcdefgh"); err != nil { // column 8, margin 4: doesn't fit
		t.Fatal(err)
	}
	until2 := &operation{kind: opNewline, p: s2.indexToPosn(s2.bufferFill), newlineKind: NewlineFill, depth: 0}
	if got := s2.fitsOnLine(until2, false); got != fitNo {
		t.Errorf("fitsOnLine = %v, want fitNo", got)
	}
}

func TestFitsOnLineUnknownWhenUntilNotYetBuffered(t *testing.T) {
	s, _ := newTestStream(10)
	if err := s.WriteString("ab"); err != nil {
		t.Fatal(err)
	}
	// until's posn is past everything currently buffered.
	until := &operation{kind: opNewline, p: s.indexToPosn(s.bufferFill) + 5, newlineKind: NewlineFill}
	if got := s.fitsOnLine(until, false); got != fitUnknown {
		t.Errorf("fitsOnLine = %v, want fitUnknown", got)
	}
}

func TestFitsOnLineNoUntilForcedIsNo(t *testing.T) {
	s, _ := newTestStream(10)
	if got := s.fitsOnLine(nil, true); got != fitNo {
		t.Errorf("fitsOnLine(nil, force) = %v, want fitNo", got)
	}
}

func TestDecideNewlineLinearAlwaysFires(t *testing.T) {
	s, _ := newTestStream(80)
	op := &operation{newlineKind: NewlineLinear}
	fire, unknown := s.decideNewline(op, false)
	if !fire || unknown {
		t.Errorf("got fire=%v unknown=%v, want fire=true unknown=false", fire, unknown)
	}
}

func TestDecideNewlineMiserFollowsMiserActive(t *testing.T) {
	width := 50
	s, _ := newTestStream(80)
	s.miserWidth = &width
	op := &operation{newlineKind: NewlineMiser}

	s.top().startColumn = 79 // 1 column left, <= 50: miser active
	if fire, _ := s.decideNewline(op, false); !fire {
		t.Error("expected miser newline to fire when miser is active")
	}
	s.top().startColumn = 0 // 80 columns left, > 50: miser inactive
	if fire, _ := s.decideNewline(op, false); fire {
		t.Error("expected miser newline not to fire when miser is inactive")
	}
}

func TestDecideNewlineFillFiresOnLaterLineInSameSection(t *testing.T) {
	s, _ := newTestStream(80)
	s.top().sectionStartLine = 0
	s.lineNumber = 1 // already past the section's starting line
	op := &operation{newlineKind: NewlineFill}
	fire, unknown := s.decideNewline(op, false)
	if !fire || unknown {
		t.Errorf("got fire=%v unknown=%v, want fire=true unknown=false", fire, unknown)
	}
}

func TestOutputLineEmitsNewlineAndAdvancesLineNumber(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.WriteString("abc"); err != nil {
		t.Fatal(err)
	}
	until := &operation{p: s.indexToPosn(s.bufferFill), newlineKind: NewlineLinear}
	if err := s.outputLine(until); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "abc\n" {
		t.Errorf("got %q, want %q", got, "abc\n")
	}
	if s.lineNumber != 1 {
		t.Errorf("lineNumber = %d, want 1", s.lineNumber)
	}
}

func TestOutputLineTrimsTrailingSpaceForNonLiteral(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.WriteString("abc   "); err != nil {
		t.Fatal(err)
	}
	until := &operation{p: s.indexToPosn(s.bufferFill), newlineKind: NewlineFill}
	if err := s.outputLine(until); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "abc\n" {
		t.Errorf("got %q, want %q (trailing spaces trimmed)", got, "abc\n")
	}
}

func TestOutputLineKeepsTrailingSpaceForLiteral(t *testing.T) {
	s, buf := newTestStream(80)
	if err := s.WriteString("abc   "); err != nil {
		t.Fatal(err)
	}
	until := &operation{p: s.indexToPosn(s.bufferFill), newlineKind: NewlineLiteral}
	if err := s.outputLine(until); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "abc   \n" {
		t.Errorf("got %q, want %q (literal keeps trailing space)", got, "abc   \n")
	}
}
