package model

import (
	"fmt"

	"tagset/internal/ast"
	"tagset/internal/diag"
)

// MaxVariants is the size of the discriminant space. Tags are a single
// byte, so a declaration cannot exceed it.
const MaxVariants = 256

type builder struct {
	decl  *ast.Decl
	diags []diag.Diagnostic
}

// Build validates a declaration tree and produces the generation-ready
// model. The checks run in a fixed order and the first violated invariant
// wins, so a given input always produces the same diagnostic.
func Build(decl *ast.Decl) (*Model, []diag.Diagnostic) {
	b := &builder{decl: decl}

	b.checkVariantNames()
	if len(b.diags) > 0 {
		return nil, b.diags
	}

	literalIndex := b.buildLiteralIndex()
	if len(b.diags) > 0 {
		return nil, b.diags
	}

	b.checkDataExpressions()
	if len(b.diags) > 0 {
		return nil, b.diags
	}

	b.checkDiscriminantWidth()
	if len(b.diags) > 0 {
		return nil, b.diags
	}

	return b.assemble(literalIndex), nil
}

func (b *builder) addDiagnostic(d diag.Diagnostic) {
	b.diags = append(b.diags, d)
}

// checkVariantNames enforces case-sensitive uniqueness of variant names,
// which become the generated tag identifiers.
func (b *builder) checkVariantNames() {
	seen := make(map[string]*ast.Variant, len(b.decl.Variants))
	for _, v := range b.decl.Variants {
		prev, ok := seen[v.Name.Value]
		if !ok {
			seen[v.Name.Value] = v
			continue
		}
		b.addDiagnostic(diag.New(diag.ErrDuplicateVariant,
			fmt.Sprintf("variant '%s' is declared twice", v.Name.Value), v.Name.Pos).
			WithLength(len(v.Name.Value)).
			WithNote(fmt.Sprintf("first declared at line %d", prev.Name.Pos.Line)).
			WithSuggestion("rename one of the variants").
			Build())
	}
}

// buildLiteralIndex maps every literal string to its owning variant index.
// Inserting a literal that already belongs to another variant is the
// injectivity failure: a string may never be claimed by two variants, and
// the builder must reject the collision rather than silently pick one.
func (b *builder) buildLiteralIndex() map[string]int {
	index := make(map[string]int)
	owner := make(map[string]*ast.Variant)

	for i, v := range b.decl.Variants {
		for _, lit := range v.Literals() {
			prev, taken := owner[lit.Value]
			if !taken {
				index[lit.Value] = i
				owner[lit.Value] = v
				continue
			}
			if prev == v {
				b.addDiagnostic(diag.New(diag.ErrDuplicateLiteral,
					fmt.Sprintf("variant '%s' lists %q more than once", v.Name.Value, lit.Value), lit.Pos).
					WithLength(len(lit.Value)+2).
					WithSuggestion("remove the repeated spelling").
					Build())
				continue
			}
			b.addDiagnostic(diag.New(diag.ErrDuplicateLiteral,
				fmt.Sprintf("literal %q of variant '%s' is already claimed by variant '%s'",
					lit.Value, v.Name.Value, prev.Name.Value), lit.Pos).
				WithLength(len(lit.Value)+2).
				WithSuggestion("every spelling must resolve to exactly one variant; remove one of them").
				Build())
		}
	}

	return index
}

// checkDataExpressions enforces the data-field contract: an expression on
// any variant requires a declared field, and a present expression cannot be
// empty. What the expression means is never checked here; it is forwarded
// opaquely and any type mismatch surfaces when the generated code is
// compiled downstream.
func (b *builder) checkDataExpressions() {
	for _, v := range b.decl.Variants {
		if v.Data == nil {
			continue
		}
		if b.decl.Field == nil {
			b.addDiagnostic(diag.New(diag.ErrDataWithoutField,
				fmt.Sprintf("variant '%s' has a data expression but the declaration has no data field", v.Name.Value), v.Data.Pos).
				WithSuggestion(fmt.Sprintf("declare one: %s { name: Type } = ...", b.decl.Name.Value)).
				WithNote("a data field declares the single shape shared by every data expression").
				Build())
			continue
		}
		if v.Data.Text == "" {
			b.addDiagnostic(diag.New(diag.ErrEmptyData,
				fmt.Sprintf("variant '%s' has an empty data expression", v.Name.Value), v.Data.Pos).
				WithSuggestion("drop the braces entirely if the variant carries no data").
				Build())
		}
	}
}

// checkDiscriminantWidth keeps the tag representable in one byte.
func (b *builder) checkDiscriminantWidth() {
	if len(b.decl.Variants) <= MaxVariants {
		return
	}
	b.addDiagnostic(diag.New(diag.ErrTooManyVariants,
		fmt.Sprintf("declaration has %d variants, more than the %d a single-byte tag can hold",
			len(b.decl.Variants), MaxVariants), b.decl.Name.Pos).
		WithLength(len(b.decl.Name.Value)).
		Build())
}

func (b *builder) assemble(literalIndex map[string]int) *Model {
	m := &Model{
		Name:         b.decl.Name.Value,
		Doc:          b.decl.Doc.DocLines(),
		LiteralIndex: literalIndex,
		Variants:     make([]*Variant, 0, len(b.decl.Variants)),
	}

	if b.decl.Field != nil {
		m.Field = &DataField{
			Name: b.decl.Field.Name.Value,
			Type: b.decl.Field.Type.String(),
		}
	}

	for i, v := range b.decl.Variants {
		mv := &Variant{
			Name:    v.Name.Value,
			Doc:     v.Doc.DocLines(),
			Index:   i,
			Primary: v.Primary.Value,
		}
		for _, alt := range v.Alternates {
			mv.Alternates = append(mv.Alternates, alt.Value)
		}
		if v.Data != nil {
			mv.Data = v.Data.Text
		}
		m.Variants = append(m.Variants, mv)
	}

	return m
}
