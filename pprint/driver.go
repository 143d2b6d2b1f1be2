package pprint

type fitResult int

const (
	fitYes fitResult = iota
	fitNo
	fitUnknown
)

// fitsOnLine reports Yes/No/Unknown for whether the span up to `until`
// (or, if until is nil, the whole buffer) fits within the remaining
// margin.
func (s *Stream) fitsOnLine(until *operation, force bool) fitResult {
	available := s.lineLength
	if s.printLines > 0 && s.lineNumber+1 >= s.printLines {
		available -= 3 + s.top().suffixLength
	}
	if until != nil {
		idx := s.posnToIndex(until.p)
		if idx > s.bufferFill {
			return fitUnknown
		}
		col := s.columnAtIndex(idx)
		if col <= available {
			return fitYes
		}
		return fitNo
	}
	if force {
		return fitNo
	}
	col := s.columnAtIndex(s.bufferFill)
	if col > available {
		return fitNo
	}
	return fitUnknown
}

// decideNewline reports whether a queued Newline op should fire now, and
// whether that decision is still unknown (in which case the driver must
// stop and wait for more input).
func (s *Stream) decideNewline(op *operation, force bool) (fire, unknown bool) {
	switch op.newlineKind {
	case NewlineLiteral, NewlineMandatory, NewlineLinear:
		return true, false
	case NewlineMiser:
		return s.miserActive(), false
	case NewlineFill:
		if s.miserActive() {
			return true, false
		}
		if s.lineNumber > s.top().sectionStartLine {
			return true, false
		}
		switch s.fitsOnLine(op.sectionEnd, force) {
		case fitNo:
			return true, false
		case fitYes:
			return false, false
		default:
			return false, true
		}
	}
	return false, false
}

// maybeOutput repeatedly consumes queued operations, committing or
// emitting what it can decide on, and stops as soon as a decision
// requires more look-ahead than is currently buffered.
func (s *Stream) maybeOutput(force bool) error {
	for {
		front := s.queue.front()
		if front == nil {
			return nil
		}
		switch front.kind {
		case opNewline:
			fire, unknown := s.decideNewline(front, force)
			if unknown {
				return nil
			}
			s.queue.popFront()
			if fire {
				if err := s.outputLine(front); err != nil {
					return err
				}
				if s.truncated {
					return errLineLimitReached
				}
			}

		case opIndent:
			s.queue.popFront()
			if !s.miserActive() {
				base := 0
				switch front.indentKind {
				case IndentBlock:
					base = s.top().startColumn
				case IndentCurrent:
					idx := s.posnToIndex(front.p)
					if idx < 0 {
						idx = 0
					}
					if idx > s.bufferFill {
						idx = s.bufferFill
					}
					base = s.columnAtIndex(idx)
				}
				s.setIndentation(base + front.amount)
			}

		case opBlockStart:
			fit := s.fitsOnLine(front.sectionEnd, force)
			if fit == fitUnknown {
				return nil
			}
			if fit == fitYes {
				s.expandTabs(front.blockEnd)
				s.dropThrough(front.blockEnd)
			} else {
				s.queue.popFront()
				s.commitBlock(front)
			}

		case opBlockEnd:
			s.queue.popFront()
			s.endBlock()

		case opTab:
			s.expandTabs(front)
			s.queue.popFront()
		}
	}
}

// dropThrough discards queue entries starting at the current front
// (normally a BlockStart that turned out to fit on the line, so its
// whole body is kept as inline literal text) through and including end.
func (s *Stream) dropThrough(end *operation) {
	for {
		front := s.queue.front()
		if front == nil {
			return
		}
		s.queue.popFront()
		if front == end {
			return
		}
	}
}

// outputLine writes the committed portion of the buffer up through
// `until`'s posn, emits a newline, and shifts the buffer.
func (s *Stream) outputLine(until *operation) error {
	consumeIdx := s.posnToIndex(until.p)
	if consumeIdx < 0 {
		consumeIdx = 0
	}
	if consumeIdx > s.bufferFill {
		consumeIdx = s.bufferFill
	}

	printIdx := consumeIdx
	if until.newlineKind != NewlineLiteral {
		for printIdx > 0 && s.buffer[printIdx-1] == ' ' {
			printIdx--
		}
	}

	if err := s.writeRunes(s.buffer[:printIdx]); err != nil {
		return err
	}

	s.lineNumber++
	if s.printLines > 0 && s.lineNumber >= s.printLines {
		if err := s.writeRunes([]rune(" ..")); err != nil {
			return err
		}
		if err := s.writeRunes(s.currentSuffix()); err != nil {
			return err
		}
		s.truncated = true
		return nil
	}

	if _, err := s.target.Write([]byte("\n")); err != nil {
		return err
	}
	s.bufferStartColumn = 0

	prefixLen := s.top().prefixLength
	if until.newlineKind == NewlineLiteral {
		prefixLen = s.top().perLinePrefixEnd
	}

	tailLen := s.bufferFill - consumeIdx
	newFill := prefixLen + tailLen
	if newFill > len(s.buffer) {
		s.growBuffer(newFill - len(s.buffer))
	}
	tail := append([]rune(nil), s.buffer[consumeIdx:s.bufferFill]...)
	copy(s.buffer[:prefixLen], s.prefix[:prefixLen])
	copy(s.buffer[prefixLen:newFill], tail)

	s.bufferOffset += consumeIdx - prefixLen
	s.bufferFill = newFill

	if until.newlineKind != NewlineLiteral {
		s.top().sectionColumn = prefixLen
		s.top().sectionStartLine = s.lineNumber
	}
	return nil
}
