// Package message parses drafted commit messages into a structured form.
//
// Parsing is only used for display (the preview command and JSON output).
// The hook path writes the generated text verbatim and never rejects a
// message for failing to parse.
package message

import (
	"strings"
)

// Types lists the recognized conventional commit types, in the order they
// are presented to the model.
var Types = []string{
	"feat", "fix", "docs", "style", "refactor",
	"perf", "test", "build", "ci", "chore", "revert",
}

// Change is a single bullet from the change list of a drafted message.
type Change struct {
	Type        string `json:"type,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Description string `json:"description"`
}

// Message is a drafted commit message split into its parts.
type Message struct {
	// Summary is the leading 1-2 sentence description.
	Summary string `json:"summary"`
	// Changes holds the parsed bullet list, if any.
	Changes []Change `json:"changes,omitempty"`
	// Raw is the full message exactly as generated.
	Raw string `json:"raw"`
}

// Parse splits a drafted message into summary and change bullets.
// Text the model wrapped in markdown code fences is unwrapped first.
// Anything that does not look like a bullet list stays in the summary.
func Parse(text string) Message {
	msg := Message{Raw: text}

	body := stripFences(strings.TrimSpace(text))

	var summary []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if bullet, ok := strings.CutPrefix(trimmed, "- "); ok {
			msg.Changes = append(msg.Changes, parseChange(bullet))
			continue
		}
		if bullet, ok := strings.CutPrefix(trimmed, "* "); ok {
			msg.Changes = append(msg.Changes, parseChange(bullet))
			continue
		}
		if len(msg.Changes) == 0 {
			summary = append(summary, line)
		}
	}

	msg.Summary = strings.TrimSpace(strings.Join(summary, "\n"))
	return msg
}

// parseChange parses a bullet of the form "type(scope): description".
// Unrecognized types leave Type empty and keep the whole bullet as the
// description.
func parseChange(bullet string) Change {
	head, desc, found := strings.Cut(bullet, ":")
	if !found {
		return Change{Description: strings.TrimSpace(bullet)}
	}

	typ := strings.TrimSpace(head)
	scope := ""
	if open := strings.IndexByte(typ, '('); open >= 0 && strings.HasSuffix(typ, ")") {
		scope = typ[open+1 : len(typ)-1]
		typ = typ[:open]
	}

	if !knownType(typ) {
		return Change{Description: strings.TrimSpace(bullet)}
	}

	return Change{
		Type:        typ,
		Scope:       scope,
		Description: strings.TrimSpace(desc),
	}
}

func knownType(typ string) bool {
	for _, t := range Types {
		if t == typ {
			return true
		}
	}
	return false
}

// stripFences removes a single wrapping markdown code fence, which models
// frequently add around the whole message.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}

	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
