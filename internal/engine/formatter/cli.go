package formatter

import (
	"fmt"
	"strings"
)

// ANSI color codes.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiDim   = "\033[2m"
)

// CLIFormatter outputs a DraftResult as a human-readable report.
type CLIFormatter struct {
	Color   bool
	Verbose bool
}

// NewCLIFormatter creates a new CLIFormatter.
func NewCLIFormatter(color, verbose bool) *CLIFormatter {
	return &CLIFormatter{Color: color, Verbose: verbose}
}

// Format returns a formatted CLI report.
func (f *CLIFormatter) Format(result DraftResult) string {
	var b strings.Builder

	header := fmt.Sprintf("Drafted in %dms", result.DurationMs)
	if result.Branch != "" {
		header += fmt.Sprintf(" on %s", result.Branch)
	}
	b.WriteString(fmt.Sprintf("\n%s %s %s\n\n",
		f.colorize("✏️", ansiGreen),
		f.colorize(header, ansiBold),
		f.colorize("("+result.Model+")", ansiDim)))

	if result.Message.Summary != "" {
		b.WriteString(fmt.Sprintf("  %s\n", f.colorize(result.Message.Summary, ansiBold)))
	}

	for _, c := range result.Message.Changes {
		tag := ""
		if c.Type != "" {
			tag = c.Type
			if c.Scope != "" {
				tag += "(" + c.Scope + ")"
			}
			tag = f.colorize(tag, ansiCyan) + ": "
		}
		b.WriteString(fmt.Sprintf("  - %s%s\n", tag, c.Description))
	}

	if len(result.Files) > 0 {
		b.WriteString(fmt.Sprintf("\n  %s\n", f.colorize(fmt.Sprintf("%d staged file(s)", len(result.Files)), ansiDim)))
	}

	// Raw message in verbose mode
	if f.Verbose && result.Message.Raw != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", f.colorize("--- raw message ---", ansiDim)))
		for _, line := range strings.Split(result.Message.Raw, "\n") {
			b.WriteString(fmt.Sprintf("  %s\n", f.colorize(line, ansiDim)))
		}
	}

	return b.String()
}

func (f *CLIFormatter) colorize(s, code string) string {
	if !f.Color {
		return s
	}
	return code + s + ansiReset
}
