package pprint

import (
	"fmt"
	"sort"
	"strings"
)

// PrinterFunc is invoked by Dispatch/OutputPretty to render a value onto
// a Stream.
type PrinterFunc func(s *Stream, v interface{}) error

// Predicate tests whether a value is handled by an entry.
type Predicate func(v interface{}) bool

// entry is one row of a Table's priority-ordered list.
type entry struct {
	typeSpec string
	test     Predicate
	priority int
	initial  bool // initial (built-in) entries always sort below user entries
	printer  PrinterFunc
	seq      int // insertion sequence, for stable "goes after equal priority" ordering

	// deferred holds a re-attempted parser for a type spec that
	// referenced an undefined predicate at install time; it is retried
	// on every Dispatch call until it resolves.
	deferred func() (Predicate, error)
}

// less implements the table's ranking rule: user entries
// outrank all initial entries; within a group, higher priority wins;
// among equal priorities the earlier-inserted entry wins (a later
// insertion at the same priority sorts behind, i.e. loses ties).
func (e *entry) less(o *entry) bool {
	if e.initial != o.initial {
		return e.initial // e (initial) ranks below o (user) => e "less preferred"
	}
	if e.priority != o.priority {
		return e.priority < o.priority
	}
	return e.seq > o.seq // later insertion is less preferred on ties
}

// Table is a dispatch table: a priority-ordered list of entries plus a
// cons-head fast path. The zero value is a usable, empty, mutable
// table.
type Table struct {
	entries     []*entry
	consEntries map[string]*entry
	frozen      bool
	nextSeq     int
}

// NewTable returns a new, empty, mutable dispatch table.
func NewTable() *Table {
	return &Table{consEntries: map[string]*entry{}}
}

// CopyTable returns a deep copy of t, suitable for mutation even if t is
// frozen.
func CopyTable(t *Table) *Table {
	out := NewTable()
	out.entries = append(out.entries, t.entries...)
	for k, v := range t.consEntries {
		out.consEntries[k] = v
	}
	out.nextSeq = t.nextSeq
	return out
}

// Freeze marks t as the standard table: further SetDispatch calls on it
// fail with ErrStandardTableFrozen.
func (t *Table) Freeze() { t.frozen = true }

// consHeadSpecs parses a type spec of the form "cons(eql SYM)" or a "|"
// separated union of such forms, returning the head symbols. Returns
// ok=false if spec isn't of this shape at all (not an error: falls
// through to the general predicate path).
func consHeadSpecs(spec string) (heads []string, ok bool) {
	parts := strings.Split(spec, "|")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !strings.HasPrefix(p, "cons(eql ") || !strings.HasSuffix(p, ")") {
			return nil, false
		}
		sym := strings.TrimSuffix(strings.TrimPrefix(p, "cons(eql "), ")")
		sym = strings.TrimSpace(sym)
		if sym == "" {
			return nil, false
		}
		heads = append(heads, sym)
	}
	return heads, len(heads) > 0
}

// SetDispatch installs fn as the printer for values accepted by test,
// at the given priority, in table. Passing a nil fn removes any
// existing entry with the same typeSpec.
func SetDispatch(table *Table, typeSpec string, test Predicate, fn PrinterFunc, priority int) error {
	if table.frozen {
		return ErrStandardTableFrozen
	}
	if heads, ok := consHeadSpecs(typeSpec); ok {
		if table.consEntries == nil {
			table.consEntries = map[string]*entry{}
		}
		for _, h := range heads {
			if fn == nil {
				delete(table.consEntries, h)
				continue
			}
			table.consEntries[h] = &entry{typeSpec: typeSpec, priority: priority, printer: fn, seq: table.nextSeq}
			table.nextSeq++
		}
		return nil
	}
	if typeSpec == "" {
		return fmt.Errorf("%w: empty type spec", ErrInvalidTypeSpec)
	}
	if test == nil && fn != nil {
		return fmt.Errorf("%w: %s requires a predicate", ErrInvalidTypeSpec, typeSpec)
	}

	// Remove any existing entry with the same spec (equality of the
	// spec string itself).
	filtered := table.entries[:0]
	for _, e := range table.entries {
		if e.typeSpec != typeSpec {
			filtered = append(filtered, e)
		}
	}
	table.entries = filtered
	if fn == nil {
		return nil
	}

	e := &entry{typeSpec: typeSpec, test: test, priority: priority, printer: fn, seq: table.nextSeq}
	table.nextSeq++
	table.entries = append(table.entries, e)
	sortEntries(table.entries)
	return nil
}

// installInitial adds a built-in (initial) entry. It is unexported, so
// only code inside this package can install initial entries; the engine
// itself never populates a table with them.
func installInitial(table *Table, typeSpec string, test Predicate, fn PrinterFunc, priority int) {
	e := &entry{typeSpec: typeSpec, test: test, priority: priority, printer: fn, initial: true, seq: table.nextSeq}
	table.nextSeq++
	table.entries = append(table.entries, e)
	sortEntries(table.entries)
}

// sortEntries keeps entries ranked highest-first by `less` (a stable
// sort so ties keep insertion order pre-reversal, matching "new entry
// goes after existing equal-priority entries").
func sortEntries(entries []*entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].less(entries[i])
	})
}

// Dispatch returns the printer function for v in table, and whether any
// entry matched at all (false means the default "ugly" printer should
// be used).
func Dispatch(v interface{}, table *Table) (PrinterFunc, bool) {
	var consEntry *entry
	if head, isCons := consHead(v); isCons {
		consEntry = table.consEntries[head]
	}

	if consEntry != nil {
		for _, e := range table.entries {
			if !outranksConsEntry(e, consEntry) {
				// e no longer strictly outranks consEntry; everything
				// from here down ranks at or below it, so the cons
				// entry wins (ties go to the fast path, not to
				// insertion order).
				break
			}
			if e.matches(v) {
				return e.printer, true
			}
		}
		return consEntry.printer, true
	}

	for _, e := range table.entries {
		if e.matches(v) {
			return e.printer, true
		}
	}
	return nil, false
}

// outranksConsEntry reports whether e strictly outranks a cons-head
// fast-path entry: a user entry always outranks an initial one, and
// among entries of the same initial-ness only a strictly higher
// priority outranks the cons entry. Unlike entry.less, insertion order
// never breaks a tie here — a tie leaves the cons entry as the winner.
func outranksConsEntry(e, consEntry *entry) bool {
	if e.initial != consEntry.initial {
		return !e.initial
	}
	return e.priority > consEntry.priority
}

func (e *entry) matches(v interface{}) bool {
	if e.test != nil {
		return e.test(v)
	}
	if e.deferred != nil {
		if p, err := e.deferred(); err == nil {
			e.test = p
			e.deferred = nil
			return p(v)
		}
		return false
	}
	return false
}

// HeadSymbol is implemented by values that behave like a Lisp cons cell
// for dispatch purposes: a pair whose car may be a symbol used as the
// cons-fast-path key.
type HeadSymbol interface {
	Head() (string, bool)
}

func consHead(v interface{}) (string, bool) {
	if h, ok := v.(HeadSymbol); ok {
		return h.Head()
	}
	return "", false
}

// predicateRegistry resolves named type predicates (e.g. "symbol",
// "number") for SetDispatchNamed. generation counts registrations;
// deferred checkers do not consult it and simply retry the lookup each
// time their entry is asked to match.
var predicateRegistry = struct {
	byName     map[string]Predicate
	generation int
}{byName: map[string]Predicate{}}

// RegisterPredicate makes name available to SetDispatchNamed. Deferred
// checkers installed before it existed pick it up the next time their
// entry is tried during a Dispatch call.
func RegisterPredicate(name string, fn Predicate) {
	predicateRegistry.byName[name] = fn
	predicateRegistry.generation++
}

// SetDispatchNamed installs fn as the printer for values accepted by
// the named predicate (see RegisterPredicate). If the name isn't
// registered yet, it installs a deferred checker that matches nothing
// until a matching RegisterPredicate call arrives, and logs a warning
// through logger (may be nil).
func SetDispatchNamed(table *Table, name string, fn PrinterFunc, priority int, logger interface{ Warn(string, ...interface{}) }) error {
	if table.frozen {
		return ErrStandardTableFrozen
	}
	if p, ok := predicateRegistry.byName[name]; ok {
		return SetDispatch(table, "named:"+name, p, fn, priority)
	}
	if logger != nil {
		w := &unrecognizedTypeSpecWarning{spec: name, err: fmt.Errorf("predicate %q is not registered; installing deferred checker", name)}
		logger.Warn(w.Error())
	}
	e := &entry{typeSpec: "named:" + name, priority: priority, printer: fn, seq: table.nextSeq}
	e.deferred = func() (Predicate, error) {
		if p, ok := predicateRegistry.byName[name]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("pprint: predicate %q still undefined", name)
	}
	table.nextSeq++
	filtered := table.entries[:0]
	for _, existing := range table.entries {
		if existing.typeSpec != e.typeSpec {
			filtered = append(filtered, existing)
		}
	}
	table.entries = append(filtered, e)
	sortEntries(table.entries)
	return nil
}
