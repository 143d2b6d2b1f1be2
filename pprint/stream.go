package pprint

import (
	"io"

	"github.com/charmbracelet/log"
)

const defaultRightMargin = 80

// blockRecord is a committed logical block on the block stack. Index 0
// of Stream.blocks is always the zero-valued sentinel.
type blockRecord struct {
	startColumn      int
	sectionColumn    int
	perLinePrefixEnd int
	prefixLength     int
	suffixLength     int
	sectionStartLine int
}

// Config captures the ambient configuration a Stream is built with; it
// is read once at construction and never re-read.
type Config struct {
	// RightMargin is the target line length in columns. Zero means the
	// package default (80).
	RightMargin int
	// MiserWidth, when non-nil, is the threshold below which miser mode
	// activates for the innermost block.
	MiserWidth *int
	// Lines, when non-nil, caps the total number of emitted lines.
	Lines *int
	// Readably disables the Lines truncation regardless of the Lines
	// field, matching CL's *print-readably*.
	Readably bool
	// Logger is stored on the Stream; a discard logger is used if nil.
	// The Stream itself writes no log records through it.
	Logger *log.Logger
}

func (c Config) rightMargin() int {
	if c.RightMargin > 0 {
		return c.RightMargin
	}
	return defaultRightMargin
}

// Stream is the pretty-print stream: buffer, prefix/suffix stacks,
// queue of pending operations, and the block stack. One Stream backs
// one logical printing operation; concurrent use of one Stream is
// undefined.
type Stream struct {
	target     io.Writer
	lineLength int
	printLines int // 0 means unlimited
	readably   bool
	logger     *log.Logger

	buffer            []rune
	bufferFill        int
	bufferOffset      int
	bufferStartColumn int
	lineNumber        int

	blocks []blockRecord

	prefix    []rune
	prefixLen int

	suffix         []rune
	suffixValidLen int

	queue         opQueue
	pendingBlocks []*operation

	charOutHook func(r rune)

	// miserWidth mirrors Config.MiserWidth; nil means miser mode never
	// activates.
	miserWidth *int

	truncated bool
}

// NewStream constructs a Stream writing committed lines to target.
func NewStream(target io.Writer, cfg Config) *Stream {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	printLines := 0
	if cfg.Lines != nil && !cfg.Readably {
		printLines = *cfg.Lines
	}
	s := &Stream{
		target:     target,
		lineLength: cfg.rightMargin(),
		printLines: printLines,
		readably:   cfg.Readably,
		logger:     logger,
		miserWidth: cfg.MiserWidth,
		blocks:     []blockRecord{{}}, // bottom sentinel
		buffer:     make([]rune, 64),
		prefix:     make([]rune, 32),
		suffix:     make([]rune, 32),
	}
	return s
}

func (s *Stream) top() *blockRecord {
	return &s.blocks[len(s.blocks)-1]
}

// growSize implements the uniform growth policy shared by the buffer,
// prefix and suffix stores: new size = max(2*old, old + floor(5*added/4)).
func growSize(old, added int) int {
	grown := old + (5*added)/4
	if 2*old > grown {
		return 2 * old
	}
	return grown
}

