// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"

	"tagset/grammar"
	"tagset/internal/codegen"
	"tagset/internal/diag"
	"tagset/internal/model"
	"tagset/internal/parser"
)

var (
	outPath = flag.String("o", "", "output file (single input only; default: <input>_tags.go beside the input)")
	pkgName = flag.String("pkg", "", "package name of generated files (default: name of the output directory)")
	fmtMode = flag.Bool("fmt", false, "print the canonical form of each input instead of generating")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	inputs, err := expandPatterns(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *outPath != "" && len(inputs) > 1 {
		fmt.Fprintln(os.Stderr, "-o only makes sense with a single input file")
		os.Exit(1)
	}

	if *fmtMode {
		formatInputs(inputs)
		return
	}

	startTime := time.Now()
	for _, input := range inputs {
		if !generate(input) {
			color.Red("Generation failed after %s", formatDuration(time.Since(startTime)))
			os.Exit(1)
		}
	}
	color.Green("Generated %d file(s) in %s", len(inputs), formatDuration(time.Since(startTime)))
}

// generate runs the whole pipeline for one input. Nothing is written until
// parsing and validation both succeed, so a failing input never leaves a
// partial output file behind.
func generate(input string) bool {
	source, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return false
	}

	decl, parseErrors, scanErrors := parser.ParseSource(input, string(source))

	for _, scanErr := range scanErrors {
		fmt.Print(FormatScanError(input, scanErr, string(source)))
	}
	for _, parseErr := range parseErrors {
		fmt.Print(FormatParseError(input, parseErr, string(source)))
	}
	if len(scanErrors) > 0 || len(parseErrors) > 0 || decl == nil {
		return false
	}

	m, validationDiags := model.Build(decl)
	if len(validationDiags) > 0 {
		reporter := diag.NewReporter(input, string(source))
		for _, d := range validationDiags {
			fmt.Print(reporter.Format(d))
		}
		return false
	}

	output := *outPath
	if output == "" {
		output = defaultOutput(input)
	}
	pkg := *pkgName
	if pkg == "" {
		pkg = packageName(output)
	}

	code := codegen.Generate(m, codegen.Options{Package: pkg, Source: input})
	if err := os.WriteFile(output, []byte(code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", output, err)
		return false
	}

	return true
}

func formatInputs(inputs []string) {
	for _, input := range inputs {
		file, err := grammar.ParseFile(input)
		if err != nil {
			os.Exit(1)
		}
		fmt.Print(grammar.Format(file))
	}
}

// expandPatterns resolves arguments that may be plain paths or '**' glob
// patterns. A pattern that matches nothing is an error rather than a
// silent no-op.
func expandPatterns(patterns []string) ([]string, error) {
	var inputs []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		inputs = append(inputs, matches...)
	}
	return inputs, nil
}

func defaultOutput(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_tags.go"
}

// packageName derives a package clause from the directory the output lands
// in, the way generated files conventionally match their package.
func packageName(output string) string {
	abs, err := filepath.Abs(output)
	if err != nil {
		return "main"
	}
	dir := filepath.Base(filepath.Dir(abs))

	var b strings.Builder
	for _, r := range dir {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		return "main"
	}
	return name
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tagset [flags] <file.tags|pattern> ...")
	fmt.Fprintln(os.Stderr, "Patterns may use '**' globs, e.g. 'defs/**/*.tags'.")
	flag.PrintDefaults()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func FormatScanError(path string, err parser.ScanError, source string) string {
	return formatError(path, err.Message, err.Position, err.Length, source)
}

func FormatParseError(path string, err parser.ParseError, source string) string {
	return formatError(path, err.Message, err.Position, 1, source)
}

func formatError(path, message string, pos parser.Position, length int, source string) string {
	lines := strings.Split(source, "\n")

	var lineContent string
	if pos.Line-1 < len(lines) && pos.Line-1 >= 0 {
		lineContent = lines[pos.Line-1]
	}

	// Prepare the underline
	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	// Color setup
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for line number column
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		path, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
