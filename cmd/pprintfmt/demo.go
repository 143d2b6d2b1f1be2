package main

import (
	"strconv"

	"github.com/prettylisp/pprint/pprint"
)

// newDemoTable builds the dispatch table this command drives the engine
// with. The concrete printers below are data for the table, not part of
// the engine itself: the engine only ever sees a Table and a Dispatch
// call, never these concrete types.
func newDemoTable() *pprint.Table {
	t := pprint.NewTable()
	_ = pprint.SetDispatch(t, "symbol", func(v interface{}) bool { _, ok := v.(Symbol); return ok }, printSymbol, 0)
	_ = pprint.SetDispatch(t, "string", func(v interface{}) bool { _, ok := v.(string); return ok }, printString, 0)
	_ = pprint.SetDispatch(t, "number", func(v interface{}) bool { _, ok := v.(float64); return ok }, printNumber, 0)
	_ = pprint.SetDispatch(t, "vector", func(v interface{}) bool { _, ok := v.(Vector); return ok }, printVector, 0)
	_ = pprint.SetDispatch(t, "cons", func(v interface{}) bool { _, ok := v.(*Cons); return ok }, printList, 0)
	// cons-head fast path: a (quote x) form always prints as 'x,
	// regardless of what the generic "cons" entry above would do,
	// because the cons fast path is consulted before lower-ranked
	// entries get a turn.
	_ = pprint.SetDispatch(t, "cons(eql quote)", nil, printQuote, 0)
	return t
}

func printSymbol(s *pprint.Stream, v interface{}) error {
	return s.WriteString(string(v.(Symbol)))
}

func printString(s *pprint.Stream, v interface{}) error {
	return s.WriteString(strconv.Quote(v.(string)))
}

func printNumber(s *pprint.Stream, v interface{}) error {
	return s.WriteString(strconv.FormatFloat(v.(float64), 'g', -1, 64))
}

func printQuote(s *pprint.Stream, v interface{}) error {
	items, ok := listItems(v)
	if !ok || len(items) != 2 {
		return printList(s, v)
	}
	if err := s.WriteString("'"); err != nil {
		return err
	}
	return pprint.OutputPretty(items[1], s, table)
}

// printList renders a proper list as a logical block whose elements are
// separated by a space-then-fill break, so short lists stay on one
// line and long ones wrap at item boundaries.
func printList(s *pprint.Stream, v interface{}) error {
	c := v.(*Cons)
	items, ok := listItems(c)
	if !ok {
		items = improperItems(c)
	}
	if err := s.StartLogicalBlock("(", false, ")"); err != nil {
		return err
	}
	for i, item := range items {
		if i > 0 {
			if err := s.WriteString(" "); err != nil {
				return err
			}
			if err := s.Fill(); err != nil {
				return err
			}
		}
		if err := pprint.OutputPretty(item, s, table); err != nil {
			return err
		}
	}
	return s.EndLogicalBlock()
}

func improperItems(c *Cons) []interface{} {
	var items []interface{}
	var v interface{} = c
	for {
		cur, isCons := v.(*Cons)
		if !isCons {
			items = append(items, Symbol("."), v)
			return items
		}
		items = append(items, cur.Car)
		v = cur.Cdr
		if v == nil {
			return items
		}
	}
}

// printVector renders a vector as a tabular block: items are aligned to
// non-additive TabSection stops every 8 columns from the section start.
func printVector(s *pprint.Stream, v interface{}) error {
	items := v.(Vector)
	if err := s.StartLogicalBlock("#(", false, ")"); err != nil {
		return err
	}
	for i, item := range items {
		if i > 0 {
			if err := s.WriteString(" "); err != nil {
				return err
			}
			if err := s.Tab(pprint.TabSection, 0, 8); err != nil {
				return err
			}
			if err := s.Fill(); err != nil {
				return err
			}
		}
		if err := pprint.OutputPretty(item, s, table); err != nil {
			return err
		}
	}
	return s.EndLogicalBlock()
}
