package diag

import "tagset/internal/ast"

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
)

// Diagnostic represents a structured generation-time failure with
// enough location context to point at the offending declaration.
type Diagnostic struct {
	Level       Level
	Code        string       // Error code like E0201
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []string     // Suggested fixes
	Notes       []string     // Additional context notes
	Help        string       // Help text for the error
}

// Builder provides a fluent interface for assembling diagnostics
type Builder struct {
	d Diagnostic
}

// New creates a new error-level diagnostic builder
func New(code, message string, pos ast.Position) *Builder {
	return &Builder{
		d: Diagnostic{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *Builder) WithLength(length int) *Builder {
	b.d.Length = length
	return b
}

// WithSuggestion adds a suggested fix
func (b *Builder) WithSuggestion(message string) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, message)
	return b
}

// WithNote adds a context note
func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp sets the help text
func (b *Builder) WithHelp(help string) *Builder {
	b.d.Help = help
	return b
}

// Build returns the completed diagnostic
func (b *Builder) Build() Diagnostic {
	return b.d
}
