package ast

// Decl represents a full tag-set declaration (one per source file)
// Example: "/// Operators.\nOperator { fixity: Fixity } = Eq \"==\" Add \"+\" { Left(6) }"
type Decl struct {
	Pos      Position
	EndPos   Position
	Doc      *DocComment // type-level doc lines, nil when absent
	Name     Ident
	Field    *DataField // nil when the variants carry no data
	Variants []*Variant
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier: the type name, variant names, field names
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// DocComment represents one block of consecutive '///' lines.
// Lines hold the text after the marker, verbatim; the generator forwards
// them without interpreting their content.
type DocComment struct {
	Pos    Position
	EndPos Position
	Lines  []string
}

// DataField represents the optional associated-data declaration
// Example: "{ fixity: Fixity }" between the type name and '='
type DataField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeRef
}

// TypeRef represents the declared data type, possibly qualified
// Example: "Fixity", "token.Fixity"
type TypeRef struct {
	Pos    Position
	EndPos Position
	Parts  []Ident
}

// Variant represents one named member of the declared set
// Example: "Add \"+\" \"plus\" { Left(6) }"
type Variant struct {
	Pos        Position
	EndPos     Position
	Doc        *DocComment
	Name       Ident
	Primary    StringLit
	Alternates []StringLit
	Data       *DataExpr // nil when the variant supplies no data
}

// StringLit represents a string literal with its unescaped value
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// DataExpr represents an opaque associated-data expression.
// Text is the raw source between the braces, trimmed but otherwise
// untouched; it is never type-checked here, only forwarded.
type DataExpr struct {
	Pos    Position
	EndPos Position
	Text   string
}

// DocLines returns the doc lines of a possibly-nil comment.
func (d *DocComment) DocLines() []string {
	if d == nil {
		return nil
	}
	return d.Lines
}

// String joins a qualified type reference back into source form.
func (t TypeRef) String() string {
	out := ""
	for i, part := range t.Parts {
		if i > 0 {
			out += "."
		}
		out += part.Value
	}
	return out
}

// HasData reports whether the variant supplies an associated-data expression.
func (v *Variant) HasData() bool {
	return v.Data != nil
}

// Literals returns the primary followed by every alternate, in source order.
func (v *Variant) Literals() []StringLit {
	lits := make([]StringLit, 0, 1+len(v.Alternates))
	lits = append(lits, v.Primary)
	lits = append(lits, v.Alternates...)
	return lits
}
