package pprint

import "github.com/mattn/go-runewidth"

// indexToPosn converts a buffer index to the monotonic stream posn.
func (s *Stream) indexToPosn(i int) int { return i + s.bufferOffset }

// posnToIndex converts a stream posn to the current buffer index. The
// result is only meaningful for posns still within the live buffer
// window; callers that hold stale posns across a shift must re-derive
// them instead of reusing a cached index.
func (s *Stream) posnToIndex(p int) int { return p - s.bufferOffset }

// columnAtIndex computes the hypothetical column of buffer[i]: where
// that character would appear if the stream were emitted right now with
// no further conditional breaks firing. Mandatory/literal newlines
// queued before i are guaranteed to fire regardless, so they do reset
// the running column; tabs add their expanded width; conditional
// newlines and block starts are not assumed to fire.
func (s *Stream) columnAtIndex(i int) int {
	target := s.indexToPosn(i)
	col := s.bufferStartColumn
	lastPosn := s.bufferOffset
	for _, op := range s.queue.ops {
		if op.posn() >= target {
			break
		}
		switch op.kind {
		case opNewline:
			if op.newlineKind == NewlineMandatory || op.newlineKind == NewlineLiteral {
				col = s.columnAfterForcedBreak(op)
				lastPosn = op.p
			}
		case opTab:
			col += s.tabWidth(op, col+runeSpan(op.p-lastPosn))
		}
	}
	col += runeSpan(target - lastPosn)
	return col
}

// columnAfterForcedBreak returns the column a line would start at
// immediately after a newline that is certain to fire: the current
// indentation (prefix length) of the block the newline belongs to.
func (s *Stream) columnAfterForcedBreak(op *operation) int {
	depth := op.depth
	if depth >= 0 && depth < len(s.blocks) {
		return s.blocks[depth].prefixLength
	}
	return s.top().prefixLength
}

// runeSpan approximates the display-column span of a run of n plain
// (non-wide) buffer slots. It is used by the hypothetical look-ahead in
// columnAtIndex, which counts every buffer slot as one column; wide
// runes are measured only by columnWidth, when emitted text advances
// bufferStartColumn.
func runeSpan(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// columnWidth measures the display width of a slice of runes using
// go-runewidth's per-rune width table.
func columnWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}
