package codegen

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"tagset/internal/model"
)

// Options control the shape of the emitted file.
type Options struct {
	Package string // package clause of the generated file
	Source  string // path of the .tags input, recorded in the header
}

// Generate emits the Go source for a validated model. Generation is pure:
// the same model and options always produce byte-identical output. Emitted
// order follows the model's variant order everywhere; map iteration never
// decides anything.
func Generate(m *model.Model, opts Options) string {
	g := &generator{model: m, opts: opts}
	g.emitFile()
	return strings.TrimRight(g.out.String(), "\n") + "\n"
}

type generator struct {
	model *model.Model
	opts  Options
	out   strings.Builder
}

func (g *generator) write(format string, args ...interface{}) {
	g.out.WriteString(fmt.Sprintf(format, args...))
}

func (g *generator) line(format string, args ...interface{}) {
	g.write(format, args...)
	g.out.WriteString("\n")
}

func (g *generator) blank() {
	g.out.WriteString("\n")
}

// doc forwards captured '///' lines as '//' comments, verbatim.
func (g *generator) doc(lines []string, indent string) {
	for _, l := range lines {
		g.line("%s//%s", indent, l)
	}
}

func (g *generator) emitFile() {
	g.line("// Code generated by tagset from %s. DO NOT EDIT.", filepath.Base(g.opts.Source))
	g.blank()
	g.line("package %s", g.opts.Package)
	g.blank()
	g.line(`import "strconv"`)
	g.blank()

	g.emitType()
	g.emitConstants()
	g.emitVariantsArray()
	g.emitLookup()
	g.emitMembership()
	g.emitString()
	g.emitIndex()
	if g.model.Field != nil {
		g.emitDataAccessor()
	}
}

func (g *generator) emitType() {
	g.doc(g.model.Doc, "")
	g.line("type %s uint8", g.model.Name)
	g.blank()
}

func (g *generator) emitConstants() {
	name := g.model.Name
	g.line("// %s tags in declaration order. The discriminant is also the", name)
	g.line("// positional index, so comparing tags with < follows declaration order.")
	g.line("const (")
	for i, v := range g.model.Variants {
		g.doc(v.Doc, "\t")
		if i == 0 {
			g.line("\t%s%s %s = iota", name, v.Name, name)
		} else {
			g.line("\t%s%s", name, v.Name)
		}
	}
	g.line(")")
	g.blank()
}

func (g *generator) emitVariantsArray() {
	name := g.model.Name
	g.line("// %sVariants lists every %s tag, index i holding the tag whose", name, name)
	g.line("// Index is i. Access is unchecked: indexing past the end panics like any")
	g.line("// other Go array access, and staying in bounds is the caller's business.")
	g.line("var %sVariants = [%d]%s{", name, len(g.model.Variants), name)
	for _, v := range g.model.Variants {
		g.line("\t%s%s,", name, v.Name)
	}
	g.line("}")
	g.blank()
}

func (g *generator) emitLookup() {
	name := g.model.Name
	g.line("// Lookup%s resolves a source spelling, primary or alternate, to its tag.", name)
	g.line("// Matching is exact, whole-string and case-sensitive.")
	g.line("func Lookup%s(s string) (%s, bool) {", name, name)
	g.line("\tswitch s {")
	for _, v := range g.model.Variants {
		g.line("\tcase %s:", quotedList(v.Literals()))
		g.line("\t\treturn %s%s, true", name, v.Name)
	}
	g.line("\t}")
	g.line("\treturn 0, false")
	g.line("}")
	g.blank()
}

func (g *generator) emitMembership() {
	name := g.model.Name
	g.line("// Is%s reports whether s spells some %s tag.", name, name)
	g.line("func Is%s(s string) bool {", name)
	g.line("\t_, ok := Lookup%s(s)", name)
	g.line("\treturn ok")
	g.line("}")
	g.blank()
}

func (g *generator) emitString() {
	name := g.model.Name
	g.line("// String returns the canonical spelling of the tag. Alternate spellings")
	g.line("// are accepted on lookup but never produced here.")
	g.line("func (t %s) String() string {", name)
	g.line("\tswitch t {")
	for _, v := range g.model.Variants {
		g.line("\tcase %s%s:", name, v.Name)
		g.line("\t\treturn %s", strconv.Quote(v.Primary))
	}
	g.line("\t}")
	g.line("\treturn \"%s(\" + strconv.Itoa(int(t)) + \")\"", name)
	g.line("}")
	g.blank()
}

func (g *generator) emitIndex() {
	g.line("// Index returns the zero-based declaration position of the tag.")
	g.line("func (t %s) Index() int {", g.model.Name)
	g.line("\treturn int(t)")
	g.line("}")
	g.blank()
}

// emitDataAccessor emits the associated-data method, named after the
// declared field. Expressions are forwarded verbatim; whether they really
// are values of the declared type is settled by the Go compiler when the
// generated file is built, not here.
func (g *generator) emitDataAccessor() {
	name := g.model.Name
	field := g.model.Field
	method := exportName(field.Name)

	g.line("// %s returns the %s value attached to the tag, if any.", method, field.Name)
	g.line("func (t %s) %s() (%s, bool) {", name, method, field.Type)

	carriers := 0
	for _, v := range g.model.Variants {
		if v.HasData() {
			carriers++
		}
	}
	if carriers > 0 {
		g.line("\tswitch t {")
		for _, v := range g.model.Variants {
			if !v.HasData() {
				continue
			}
			g.line("\tcase %s%s:", name, v.Name)
			g.line("\t\treturn %s, true", v.Data)
		}
		g.line("\t}")
	}
	g.line("\tvar none %s", field.Type)
	g.line("\treturn none, false")
	g.line("}")
	g.blank()
}

func quotedList(literals []string) string {
	quoted := make([]string, len(literals))
	for i, lit := range literals {
		quoted[i] = strconv.Quote(lit)
	}
	return strings.Join(quoted, ", ")
}

// exportName capitalizes a field name into a method name: fixity -> Fixity.
func exportName(name string) string {
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
