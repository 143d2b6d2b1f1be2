package pprint

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// OutputPretty looks up v in table; if found, invokes its printer on s.
// If nothing in table matches, it falls back to DefaultUglyPrinter. This
// is the one entry point a recursive object printer should drive the
// engine through.
func OutputPretty(v interface{}, s *Stream, table *Table) error {
	if table != nil {
		if printer, found := Dispatch(v, table); found {
			return printer(s, v)
		}
	}
	return DefaultUglyPrinter(s, v)
}

// ugly style: a muted, bordered one-liner-or-wrapped block, used only
// for values no dispatch entry recognizes. It is the sole place in the
// package that renders with color/border rather than plain text, so an
// unrecognized value is visually obvious rather than silently matching
// the wrong printer.
var uglyStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// DefaultUglyPrinter renders a value that no dispatch entry claimed. It
// word-wraps a Go-syntax representation of the value to the stream's
// margin with reflow/wordwrap and boxes it with lipgloss so it reads
// unmistakably as a fallback, not a first-class printer's output.
func DefaultUglyPrinter(s *Stream, v interface{}) error {
	text := fmt.Sprintf("%#v", v)
	wrapped := wordwrap.String(text, max(8, s.lineLength-4))
	boxed := uglyStyle.Render(wrapped)
	return s.WriteString(boxed)
}

// NewStreamTo is a convenience constructor: build a Stream over w with
// cfg, run fn against it, and Flush on every exit path. errLineLimitReached
// from fn is treated as a clean stop, not a failure: it means the line
// budget did its job, not that something went wrong.
func NewStreamTo(w io.Writer, cfg Config, fn func(*Stream) error) (err error) {
	s := NewStream(w, cfg)
	defer func() {
		if ferr := s.Flush(); err == nil {
			err = ferr
		}
	}()
	err = fn(s)
	if err == errLineLimitReached {
		err = nil
	}
	return err
}
