package pprint

// Newline enqueues a conditional newline of the given kind. Mandatory
// and Literal newlines force the driver forward; the others only
// register intent and let maybeOutput decide once it can.
func (s *Stream) Newline(kind NewlineKind) error {
	depth := len(s.pendingBlocks)
	op := &operation{kind: opNewline, p: s.indexToPosn(s.bufferFill), newlineKind: kind, depth: depth}
	s.queue.push(op)
	s.queue.linkSectionEnds(op, depth)
	force := kind == NewlineLiteral || kind == NewlineMandatory
	return s.maybeOutput(force)
}

// Indent queues an indentation change, effective at the next line
// break, relative either to the innermost block's start column or to
// the current column.
func (s *Stream) Indent(kind IndentKind, amount int) error {
	op := &operation{kind: opIndent, p: s.indexToPosn(s.bufferFill), indentKind: kind, amount: amount}
	s.queue.push(op)
	return s.maybeOutput(false)
}

// Tab queues a tab stop of the given kind, column number and column
// increment.
func (s *Stream) Tab(kind TabKind, colnum, colinc int) error {
	op := &operation{kind: opTab, p: s.indexToPosn(s.bufferFill), tabKind: kind, colnum: colnum, colinc: colinc}
	s.queue.push(op)
	return s.maybeOutput(false)
}

// StartLogicalBlock emits prefix (if any) immediately, then enqueues a
// BlockStart whose suffix will be emitted at the matching
// EndLogicalBlock. perLine makes prefix repeat after every wrap inside
// the block.
func (s *Stream) StartLogicalBlock(prefix string, perLine bool, suffix string) error {
	if prefix != "" {
		if err := s.WriteString(prefix); err != nil {
			return err
		}
	}
	depth := len(s.pendingBlocks)
	op := &operation{
		kind:          opBlockStart,
		p:             s.indexToPosn(s.bufferFill),
		depth:         depth,
		prefix:        prefix,
		perLinePrefix: perLine,
		suffix:        suffix,
	}
	s.queue.push(op)
	s.pendingBlocks = append(s.pendingBlocks, op)
	return s.maybeOutput(false)
}

// EndLogicalBlock emits the saved suffix and closes the innermost
// pending block.
func (s *Stream) EndLogicalBlock() error {
	if len(s.pendingBlocks) == 0 {
		return nil
	}
	start := s.pendingBlocks[len(s.pendingBlocks)-1]
	s.pendingBlocks = s.pendingBlocks[:len(s.pendingBlocks)-1]

	depth := start.depth
	op := &operation{kind: opBlockEnd, p: s.indexToPosn(s.bufferFill)}
	s.queue.push(op)
	s.queue.linkSectionEnds(op, depth)
	start.blockEnd = op

	if start.suffix != "" {
		if err := s.WriteString(start.suffix); err != nil {
			return err
		}
	}
	return s.maybeOutput(false)
}

// SetCharOutHook installs a one-shot callback fired on the next
// character written to the stream, before it is stored. Used by
// callers needing one character of look-behind (e.g. injecting a space
// before a sigil that follows a comma).
func (s *Stream) SetCharOutHook(fn func(r rune)) {
	s.charOutHook = fn
}

// WriteChar writes one character, splitting an embedded newline into a
// literal layout newline rather than storing '\n' in the buffer.
func (s *Stream) WriteChar(r rune) error {
	if r == '\n' {
		return s.Newline(NewlineLiteral)
	}
	if err := s.ensureSpaceInBuffer(1); err != nil {
		return err
	}
	if s.charOutHook != nil {
		hook := s.charOutHook
		s.charOutHook = nil
		hook(r)
	}
	s.buffer[s.bufferFill] = r
	s.bufferFill++
	return nil
}

// WriteString writes a string, splitting on embedded newlines in a
// straight loop over a sliding [start, end) window rather than
// recursion, so deeply newline-dense strings cannot grow the call
// stack.
func (s *Stream) WriteString(str string) error {
	runes := []rune(str)
	start := 0
	for i, r := range runes {
		if r == '\n' {
			for _, c := range runes[start:i] {
				if err := s.WriteChar(c); err != nil {
					return err
				}
			}
			if err := s.WriteChar('\n'); err != nil {
				return err
			}
			start = i + 1
		}
	}
	for _, c := range runes[start:] {
		if err := s.WriteChar(c); err != nil {
			return err
		}
	}
	return nil
}

// NewlineFill, NewlineLinear, etc. convenience emitters: Fill/Linear
// wrap Newline with the matching kind for callers that prefer verbs
// over enum values.
func (s *Stream) Fill() error      { return s.Newline(NewlineFill) }
func (s *Stream) Linear() error    { return s.Newline(NewlineLinear) }
func (s *Stream) Miser() error     { return s.Newline(NewlineMiser) }
func (s *Stream) Mandatory() error { return s.Newline(NewlineMandatory) }

// Flush forces the queue to drain, expands any remaining tabs, and
// writes the residual buffer straight to target. It is idempotent:
// calling it twice in a row observes the same state as calling it once.
func (s *Stream) Flush() error {
	if err := s.maybeOutput(true); err != nil && err != errLineLimitReached {
		return err
	}
	if s.truncated {
		s.bufferFill = 0
		s.queue.ops = nil
		s.pendingBlocks = nil
		return nil
	}
	if s.bufferFill == 0 {
		return nil
	}
	if err := s.writeRunes(s.buffer[:s.bufferFill]); err != nil {
		return err
	}
	s.bufferStartColumn += columnWidth(s.buffer[:s.bufferFill])
	s.bufferOffset += s.bufferFill
	s.bufferFill = 0
	s.queue.ops = nil
	s.pendingBlocks = nil
	return nil
}
