package pprint

import "errors"

// ErrStandardTableFrozen is returned by SetDispatch when the caller tries
// to mutate the frozen standard dispatch table. It is continuable: the
// table is left unchanged and callers may choose to ignore it.
var ErrStandardTableFrozen = errors.New("pprint: standard dispatch table is frozen")

// ErrInvalidTypeSpec is returned when SetDispatch is given a type
// specifier that cannot be parsed at all. The call has no effect.
var ErrInvalidTypeSpec = errors.New("pprint: invalid type specifier")

// ErrOutputPartialLineEmpty is raised when output_partial_line is asked
// to relieve pressure on an empty buffer; it signals a caller bug rather
// than a recoverable condition.
var ErrOutputPartialLineEmpty = errors.New("pprint: output_partial_line called with an empty buffer")

// errLineLimitReached unwinds the driver once the configured line budget
// (print_lines) is hit. It never escapes the top-level driver entry
// (NewStreamTo/Flush), which treats it as a normal, clean stop.
var errLineLimitReached = errors.New("pprint: line limit reached")

// unrecognizedTypeSpecWarning is not an error returned to callers; it is
// logged (Warn level) when set_pprint_dispatch installs a deferred
// checker for a type spec that references an undefined predicate.
type unrecognizedTypeSpecWarning struct {
	spec string
	err  error
}

func (w *unrecognizedTypeSpecWarning) Error() string {
	return "pprint: unrecognized type specifier " + w.spec + ": " + w.err.Error()
}
