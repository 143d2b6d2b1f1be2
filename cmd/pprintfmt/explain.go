package main

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/prettylisp/pprint/pprint"
)

// explanationDoc is a tiny embedded Markdown description of the reader
// syntax, parsed with goldmark and walked the way a renderer dispatches
// per AST node kind. Only text and heading nodes are pulled out; this
// is a demo, not a markdown renderer.
const explanationDoc = `# pprintfmt

Reads one or more s-expressions: lists ` + "`(a b c)`" + `, vectors ` + "`#(a b c)`" + `,
quoted forms ` + "`'x`" + `, strings, and numbers. Each form is laid out with
the pprint engine: lists use fill breaks, vectors align on tab stops.
`

func printExplanation(w io.Writer, _ string) error {
	md := goldmark.New()
	source := []byte(explanationDoc)
	doc := md.Parser().Parse(text.NewReader(source))

	var lines []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading, ast.KindParagraph:
			lines = append(lines, string(n.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return err
	}

	return pprint.NewStreamTo(w, pprint.Config{RightMargin: 72}, func(s *pprint.Stream) error {
		for i, line := range lines {
			if i > 0 {
				if err := s.Mandatory(); err != nil {
					return err
				}
			}
			if err := s.WriteString(line); err != nil {
				return err
			}
		}
		return s.Mandatory()
	})
}
