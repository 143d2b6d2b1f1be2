package pprint

// ensureSpaceInBuffer guarantees room for `want` more characters at the
// tail of the buffer. When it doesn't fit and the buffer already holds
// more than lineLength characters, it first tries a non-forcing drive
// of the queue, and if that produced no output, falls back to
// outputPartialLine to relieve the pressure directly. If there is still
// no room (or the buffer was not that full), the buffer grows.
func (s *Stream) ensureSpaceInBuffer(want int) error {
	if s.bufferFill+want <= len(s.buffer) {
		return nil
	}
	if s.bufferFill > s.lineLength {
		before := s.lineNumber
		if err := s.maybeOutput(false); err != nil {
			return err
		}
		if s.lineNumber == before {
			if err := s.outputPartialLine(); err != nil {
				return err
			}
		}
		if s.bufferFill+want <= len(s.buffer) {
			return nil
		}
	}
	s.growBuffer(want)
	return nil
}

func (s *Stream) growBuffer(added int) {
	newCap := growSize(len(s.buffer), added)
	if newCap < s.bufferFill+added {
		newCap = s.bufferFill + added
	}
	grown := make([]rune, newCap)
	copy(grown, s.buffer[:s.bufferFill])
	s.buffer = grown
}

// outputPartialLine dumps everything up to the first queued op's posn
// (or the whole buffer if the queue is empty) to relieve a stalled
// buffer that has no more breakable ops to decide on. It does not write
// a newline; it is a compaction, not a line emission.
func (s *Stream) outputPartialLine() error {
	if s.bufferFill == 0 {
		return ErrOutputPartialLineEmpty
	}
	upTo := s.bufferFill
	if front := s.queue.front(); front != nil {
		idx := s.posnToIndex(front.p)
		if idx >= 0 && idx < upTo {
			upTo = idx
		}
	}
	if err := s.writeRunes(s.buffer[:upTo]); err != nil {
		return err
	}
	s.bufferStartColumn += columnWidth(s.buffer[:upTo])
	s.shiftBufferLeft(upTo)
	return nil
}

// shiftBufferLeft removes the first n characters from the buffer,
// advancing bufferOffset by n so that every posn still refers to the
// same logical character even though its index into buffer changed.
func (s *Stream) shiftBufferLeft(n int) {
	if n <= 0 {
		return
	}
	copy(s.buffer, s.buffer[n:s.bufferFill])
	s.bufferFill -= n
	s.bufferOffset += n
}

func (s *Stream) writeRunes(rs []rune) error {
	for _, r := range rs {
		if _, err := s.target.Write([]byte(string(r))); err != nil {
			return err
		}
	}
	return nil
}
