package intents

import "github.com/custodia-labs/memora-cli/internal/core/domain"

// Built-in patterns per language. Matched against the lowercased
// query, so patterns are written in lowercase. The French patterns are
// accent-tolerant because captured questions arrive both with and
// without diacritics.
var (
	frenchPatterns = map[domain.Intent][]string{
		domain.IntentDefinition: {
			`qu['’e]?est[- ]ce que`, `c['’]est quoi`,
			`d[eé]finition`, `signifie`, `d[eé]finir`,
		},
		domain.IntentHow: {
			`comment`, `mettre en œuvre`, `r[eé]aliser`,
		},
		domain.IntentWhy: {
			`pourquoi`, `raison`, `cause`, `motif`,
		},
		domain.IntentWhen: {
			`quand`, `[aà] quelle date`, `p[eé]riode`,
		},
		domain.IntentWhere: {
			`o[uù] se`, `o[uù] trouve`, `lieu`, `endroit`,
		},
		domain.IntentWho: {
			`qui est`, `qui sont`, `personne`, `individu`,
		},
		domain.IntentAdvantages: {
			`avantages`, `b[eé]n[eé]fices`, `points forts`,
		},
		domain.IntentDisadvantages: {
			`inconv[eé]nients`, `d[eé]savantages`, `points faibles`,
		},
		domain.IntentExamples: {
			`exemples?`, `illustrations?`, `cas d'usage`,
		},
		domain.IntentSteps: {
			`[eé]tapes?`, `proc[eé]dure`, `marche [aà] suivre`,
		},
		domain.IntentTypes: {
			`types?`, `cat[eé]gories`, `sortes?`,
		},
	}

	englishPatterns = map[domain.Intent][]string{
		domain.IntentDefinition: {
			`what is`, `what are`, `definition`, `meaning of`, `define`,
		},
		domain.IntentHow: {
			`how to`, `how do`, `how can`, `how does`,
		},
		domain.IntentWhy: {
			`why`, `reason`, `cause`,
		},
		domain.IntentWhen: {
			`when`, `what date`, `what time`,
		},
		domain.IntentWhere: {
			`where`, `location`, `place`,
		},
		domain.IntentWho: {
			`who is`, `who are`, `person`,
		},
		domain.IntentAdvantages: {
			`advantages`, `benefits`, `strengths`, `pros\b`,
		},
		domain.IntentDisadvantages: {
			`disadvantages`, `drawbacks`, `weaknesses`, `cons\b`,
		},
		domain.IntentExamples: {
			`examples?`, `illustrations?`, `use cases`,
		},
		domain.IntentSteps: {
			`steps?`, `procedure`, `walkthrough`,
		},
		domain.IntentTypes: {
			`types?`, `categories`, `kinds?`,
		},
	}
)

// defaultPatterns returns the built-in patterns for a language.
// Unknown languages fall back to French, the historical default.
func defaultPatterns(lang domain.Language) map[domain.Intent][]string {
	switch lang {
	case domain.LanguageEnglish:
		return englishPatterns
	default:
		return frenchPatterns
	}
}
