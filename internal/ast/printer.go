package ast

import (
	"strconv"
	"strings"
)

// String renders the declaration back into canonical source form.
// Used by tests and debugging output; the formatter in the grammar
// package is the user-facing pretty printer.
func (d *Decl) String() string {
	var b strings.Builder

	writeDoc(&b, d.Doc, "")
	b.WriteString(d.Name.Value)
	if d.Field != nil {
		b.WriteString(" { ")
		b.WriteString(d.Field.Name.Value)
		b.WriteString(": ")
		b.WriteString(d.Field.Type.String())
		b.WriteString(" }")
	}
	b.WriteString(" =\n")

	for _, v := range d.Variants {
		writeDoc(&b, v.Doc, "    ")
		b.WriteString("    ")
		b.WriteString(v.String())
		b.WriteString("\n")
	}

	return b.String()
}

// String renders a single variant declaration on one line.
func (v *Variant) String() string {
	var b strings.Builder

	b.WriteString(v.Name.Value)
	for _, lit := range v.Literals() {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(lit.Value))
	}
	if v.Data != nil {
		b.WriteString(" { ")
		b.WriteString(v.Data.Text)
		b.WriteString(" }")
	}

	return b.String()
}

func writeDoc(b *strings.Builder, doc *DocComment, indent string) {
	for _, line := range doc.DocLines() {
		b.WriteString(indent)
		b.WriteString("///")
		b.WriteString(line)
		b.WriteString("\n")
	}
}
