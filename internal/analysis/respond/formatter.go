// Package respond renders selected passages into a templated answer
// keyed by question intent.
package respond

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// style is how a template lays out its passages.
type style int

const (
	styleParagraph style = iota
	styleNumbered
	styleBulleted
)

// template is the header and layout for one intent.
type template struct {
	header string
	style  style
}

// templates maps intents to their rendering. Intents without an entry
// fall back to the general template, declared last.
var templates = map[domain.Intent]template{
	domain.IntentDefinition:    {header: "📚 **Définition trouvée** :", style: styleParagraph},
	domain.IntentHow:           {header: "🔧 **Procédure** :", style: styleNumbered},
	domain.IntentSteps:         {header: "🔢 **Étapes** :", style: styleNumbered},
	domain.IntentWhy:           {header: "🤔 **Raisons identifiées** :", style: styleParagraph},
	domain.IntentAdvantages:    {header: "✅ **Avantages** :", style: styleBulleted},
	domain.IntentDisadvantages: {header: "⚠️ **Points à considérer** :", style: styleBulleted},
	domain.IntentExamples:      {header: "📝 **Exemples** :", style: styleBulleted},
	domain.IntentTypes:         {header: "📋 **Types** :", style: styleBulleted},
	domain.IntentGeneral:       {header: "📖 **Informations trouvées** :", style: styleParagraph},
}

// Format renders the snippets under the template for the intent, with
// a source trailer when a title is available. An empty snippet list
// renders the header alone rather than failing.
func Format(intent domain.Intent, snippets []string, sourceTitle string) string {
	tmpl, ok := templates[intent]
	if !ok {
		tmpl = templates[domain.IntentGeneral]
	}

	var b strings.Builder
	b.WriteString(tmpl.header)
	b.WriteString("\n\n")

	for i, snippet := range snippets {
		switch tmpl.style {
		case styleNumbered:
			fmt.Fprintf(&b, "%d. %s\n\n", i+1, snippet)
		case styleBulleted:
			fmt.Fprintf(&b, "• %s\n\n", snippet)
		default:
			fmt.Fprintf(&b, "%s\n\n", snippet)
		}
	}

	if sourceTitle != "" {
		fmt.Fprintf(&b, "_Source: %s_", sourceTitle)
	}

	return strings.TrimRight(b.String(), "\n")
}
