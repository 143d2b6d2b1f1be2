// Package pprint implements a streaming layout engine for structured,
// s-expression-shaped output: logical blocks, conditional newlines, tab
// stops, and a priority-ordered dispatch table that picks a printer
// function for a value's type.
//
// The engine buffers characters and queued layout directives until it
// has enough look-ahead to decide whether a conditional newline must
// fire, then drains the queue and writes committed lines to the
// underlying io.Writer. Callers drive it through Stream's Newline,
// Indent, Tab, StartLogicalBlock and EndLogicalBlock methods; object
// printers that want type-directed dispatch use Dispatch/SetDispatch.
package pprint
