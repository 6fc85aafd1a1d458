package grammar

import (
	"fmt"
	"strings"
)

// Format renders a parsed declaration in canonical layout: doc lines kept,
// variant names aligned, one variant per line, four-space indent.
func Format(f *File) string {
	var b strings.Builder

	for _, doc := range f.Doc {
		b.WriteString(doc)
		b.WriteString("\n")
	}

	b.WriteString(f.Name)
	if f.Field != nil {
		fmt.Fprintf(&b, " { %s: %s }", f.Field.Name, strings.Join(f.Field.Type, "."))
	}
	b.WriteString(" =\n")

	width := 0
	for _, v := range f.Variants {
		if len(v.Name) > width {
			width = len(v.Name)
		}
	}

	for _, v := range f.Variants {
		for _, doc := range v.Doc {
			b.WriteString("    ")
			b.WriteString(doc)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "    %-*s", width, v.Name)
		for _, lit := range v.Literals {
			b.WriteString(" ")
			b.WriteString(lit)
		}
		if v.Data != nil {
			fmt.Fprintf(&b, " { %s }", v.Data.String())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String joins the captured expression tokens back into readable source.
// The lexer discarded the original spacing, so this re-spaces with a small
// heuristic: tight around parens, brackets and dots, loose elsewhere.
func (e *DataExpr) String() string {
	var b strings.Builder
	prev := ""
	for i, tok := range e.Tokens {
		if i > 0 && needsSpace(prev, tok) {
			b.WriteString(" ")
		}
		b.WriteString(tok)
		prev = tok
	}
	return b.String()
}

func needsSpace(prev, tok string) bool {
	switch tok {
	case ")", "]", ",", ".", "(", "[":
		return false
	}
	switch prev {
	case "(", "[", ".":
		return false
	}
	return true
}
