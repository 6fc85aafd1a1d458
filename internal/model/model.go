package model

// Model is the validated, generation-ready form of a declaration.
// It exists for the duration of one generation pass: the generator reads
// it, emits source text, and the model is discarded.
type Model struct {
	Name  string
	Doc   []string
	Field *DataField // nil when the variants carry no data

	// Variants in declaration order. The slice index is the variant's
	// positional index, its discriminant, and its rank under the
	// generated total order.
	Variants []*Variant

	// LiteralIndex maps every literal string (primary or alternate,
	// across all variants) to the owning variant's index. Building it
	// is also the injectivity check: no literal belongs to two variants.
	LiteralIndex map[string]int
}

// DataField is the single declared associated-data shape.
type DataField struct {
	Name string
	Type string
}

// Variant is one validated member of the set.
type Variant struct {
	Name       string
	Doc        []string
	Index      int
	Primary    string
	Alternates []string
	Data       string // raw expression text, empty when the variant has none
}

// HasData reports whether the variant supplied a data expression.
func (v *Variant) HasData() bool {
	return v.Data != ""
}

// Literals returns the primary followed by the alternates, in source order.
func (v *Variant) Literals() []string {
	lits := make([]string, 0, 1+len(v.Alternates))
	lits = append(lits, v.Primary)
	lits = append(lits, v.Alternates...)
	return lits
}
