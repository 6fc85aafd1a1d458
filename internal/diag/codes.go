package diag

// Error codes for the tagset generator.
// These codes are used in error messages and documentation to provide
// consistent identification across the CLI and the language server.
//
// Error code ranges:
// E0100-E0199: Syntax errors (scanner and parser)
// E0200-E0299: Validation errors (model builder)
const (
	// E0100: Catch-all for malformed input the parser could not recover from
	ErrSyntax = "E0100"

	// E0101: Variant declared without a primary string literal
	ErrMissingPrimary = "E0101"

	// E0102: Data expression opened with '{' but never closed
	ErrUnterminatedData = "E0102"

	// E0103: Declaration with zero variants
	ErrEmptyDeclaration = "E0103"

	// E0201: Two variants share the same name
	ErrDuplicateVariant = "E0201"

	// E0202: A literal string is claimed by two variants
	ErrDuplicateLiteral = "E0202"

	// E0203: Variant supplies a data expression but no data field was declared
	ErrDataWithoutField = "E0203"

	// E0204: More variants than the single-byte discriminant can represent
	ErrTooManyVariants = "E0204"

	// E0205: Data expression present but empty, '{ }'
	ErrEmptyData = "E0205"
)

// Describe returns a human-readable description of the error code
func Describe(code string) string {
	switch code {
	case ErrSyntax:
		return "Input does not match the declaration grammar"
	case ErrMissingPrimary:
		return "Every variant needs a primary string literal"
	case ErrUnterminatedData:
		return "Data expression is missing its closing '}'"
	case ErrEmptyDeclaration:
		return "A declaration must list at least one variant"
	case ErrDuplicateVariant:
		return "Variant names must be unique within a declaration"
	case ErrDuplicateLiteral:
		return "Every literal string must map to exactly one variant"
	case ErrDataWithoutField:
		return "Data expressions require a declared data field"
	case ErrTooManyVariants:
		return "A declaration is limited to 256 variants"
	case ErrEmptyData:
		return "A data expression cannot be empty"
	default:
		return "Unknown error code"
	}
}

// IsValidation reports whether the code belongs to the model-validation range.
func IsValidation(code string) bool {
	return code >= "E0200" && code < "E0300"
}
