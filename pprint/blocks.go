package pprint

// commitBlock commits a BlockStart op that the driver has taken off the
// queue, pushing a new committed block record.
func (s *Stream) commitBlock(op *operation) {
	col := s.columnAtIndex(s.posnToIndex(op.p))
	prev := *s.top()

	rec := blockRecord{
		startColumn:      col,
		sectionColumn:    col,
		perLinePrefixEnd: prev.perLinePrefixEnd,
		prefixLength:     prev.prefixLength,
		suffixLength:     prev.suffixLength,
		sectionStartLine: s.lineNumber,
	}
	s.blocks = append(s.blocks, rec)

	if op.perLinePrefix && op.prefix != "" {
		pfx := []rune(op.prefix)
		s.growPrefix(col)
		copy(s.prefix[col-len(pfx):col], pfx)
		s.top().perLinePrefixEnd = col
	}
	if op.suffix != "" {
		s.prependSuffix(op.suffix)
	}
	s.setIndentation(col)
}

// endBlock pops the innermost committed block. If the outer
// indentation is greater than the inner block's, the extra prefix
// columns are space-filled.
func (s *Stream) endBlock() {
	if len(s.blocks) <= 1 {
		return
	}
	inner := s.blocks[len(s.blocks)-1]
	s.blocks = s.blocks[:len(s.blocks)-1]
	outer := s.top()
	if outer.prefixLength > inner.prefixLength {
		for i := inner.prefixLength; i < outer.prefixLength && i < len(s.prefix); i++ {
			s.prefix[i] = ' '
		}
	}
}

// setIndentation clamps col to perLinePrefixEnd, grows the prefix
// buffer if needed, space-fills from the old indentation to the new
// one, and stores col on the innermost block.
func (s *Stream) setIndentation(col int) {
	blk := s.top()
	if col < blk.perLinePrefixEnd {
		col = blk.perLinePrefixEnd
	}
	s.growPrefix(col)
	for i := blk.prefixLength; i < col; i++ {
		s.prefix[i] = ' '
	}
	blk.prefixLength = col
}

func (s *Stream) growPrefix(need int) {
	if need <= len(s.prefix) {
		return
	}
	newCap := growSize(len(s.prefix), need-len(s.prefix))
	grown := make([]rune, newCap)
	copy(grown, s.prefix)
	s.prefix = grown
}

// prependSuffix adds text to the right-justified suffix buffer: the new
// (innermost) suffix is written immediately before the previously valid
// region, so reading from the current validLen backwards yields the
// suffixes of every currently open block in LIFO (closing) order.
func (s *Stream) prependSuffix(text string) {
	chars := []rune(text)
	valid := s.top().suffixLength
	need := valid + len(chars)
	if need > len(s.suffix) {
		newCap := growSize(len(s.suffix), need-len(s.suffix))
		grown := make([]rune, newCap)
		copy(grown[newCap-valid:], s.suffix[len(s.suffix)-valid:])
		s.suffix = grown
	}
	total := len(s.suffix)
	start := total - need
	copy(s.suffix[start:start+len(chars)], chars)
	s.suffixValidLen = need
	s.top().suffixLength = need
}

// currentSuffix returns the accumulated, not-yet-emitted suffix text for
// the innermost block (and, transitively, every block still open
// beneath it), used by output_line when the line budget is hit.
func (s *Stream) currentSuffix() []rune {
	n := s.top().suffixLength
	if n == 0 {
		return nil
	}
	total := len(s.suffix)
	return s.suffix[total-n:]
}

// miserActive reports whether miser mode is currently engaged for the
// innermost block: the available width is at or below miser_width.
func (s *Stream) miserActive() bool {
	if s.miserWidth == nil {
		return false
	}
	return s.lineLength-s.top().startColumn <= *s.miserWidth
}
