// Package intents classifies questions into rhetorical intents.
package intents

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// rule binds an intent to its matcher. Rules are evaluated in
// declaration order; the first match wins.
type rule struct {
	intent  domain.Intent
	pattern *regexp.Regexp
}

// Classifier maps a query to an intent using ordered patterns.
type Classifier struct {
	rules []rule
}

// NewClassifier builds a classifier for the language. Overrides map an
// intent to replacement patterns; intents without an override keep the
// built-in patterns. Evaluation order always follows domain.Intents.
func NewClassifier(lang domain.Language, overrides map[domain.Intent][]string) (*Classifier, error) {
	defaults := defaultPatterns(lang)

	var rules []rule
	for _, intent := range domain.Intents {
		if intent == domain.IntentGeneral {
			continue // fallback, never pattern-matched
		}
		patterns := defaults[intent]
		if custom, ok := overrides[intent]; ok {
			patterns = custom
		}
		for _, p := range patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern for intent %s: %w", intent, err)
			}
			rules = append(rules, rule{intent: intent, pattern: re})
		}
	}

	return &Classifier{rules: rules}, nil
}

// Classify returns the intent of the query, or IntentGeneral when no
// pattern matches.
func (c *Classifier) Classify(query string) domain.Intent {
	lower := strings.ToLower(query)
	for _, r := range c.rules {
		if r.pattern.MatchString(lower) {
			return r.intent
		}
	}
	return domain.IntentGeneral
}
