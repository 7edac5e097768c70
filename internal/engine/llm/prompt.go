package llm

import (
	"fmt"
	"strings"

	"github.com/irahardianto/scribe/internal/engine/message"
)

const fence = "```"

const exampleMessage = `API now supports HTTPS connections and DELETE
method for Pancakes type. Plus minor bug fixes.

- feat(api): Add HTTPS support to api
- feat(api): Add delete to Pancakes type
- fix(pancakes): Fix for case when syrup is missing
- docs(pancakes): Fix misspellings
`

// BuildPrompt constructs the generation prompt from the staged diff, the
// current branch name, and an optional user hint. It is pure: identical
// inputs always produce identical prompt text. The diff is included
// verbatim — no escaping or sanitization beyond JSON transport encoding,
// an accepted limitation of passing arbitrary diff content to the model.
func BuildPrompt(diff, branch, hint string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a commit message for the following changes on branch '%s'.\n", branch)
	if hint != "" {
		fmt.Fprintf(&b, "The user has provided the following hint: '%s'\n", hint)
	}

	b.WriteString(`
The commit message should be a 1-2 sentence high-level summary,
followed by a blank line, and a markdown list of the changes in
conventional commit format. You should only state facts and not
assume the intentions of the change.

Use the following conventional commit types: `)
	b.WriteString(strings.Join(message.Types, ", "))
	b.WriteString(".\n\nExample:\n")
	b.WriteString(fence + "\n" + exampleMessage + fence + "\n")
	b.WriteString("\nHere is the diff:\n")
	b.WriteString(fence + "\n" + diff + "\n" + fence + "\n")

	return b.String()
}
