package grammar

// File is the declarative shape of a .tags source: one declaration with an
// optional data field and at least one variant. This grammar backs the
// formatter; the generator pipeline uses the hand-written parser, which
// tracks positions precisely enough for diagnostics.
type File struct {
	Doc      []string   `@DocComment*`
	Name     string     `@Ident`
	Field    *DataField `("{" @@ "}")?`
	Variants []*Variant `"=" @@+`
}

type DataField struct {
	Name string   `@Ident ":"`
	Type []string `@Ident ("." @Ident)*`
}

type Variant struct {
	Doc      []string  `@DocComment*`
	Name     string    `@Ident`
	Literals []string  `@String+`
	Data     *DataExpr `("{" @@ "}")?`
}

// DataExpr is an opaque token run between braces. The declarative grammar
// cannot nest braces here; the hand-written parser can, so deeply nested
// expressions only lose access to the formatter, not to generation.
type DataExpr struct {
	Tokens []string `(@Ident | @Number | @String | @"(" | @")" | @"[" | @"]" | @"," | @"." | @":" | @"=" | @"+" | @"-" | @"*" | @"/")+`
}
