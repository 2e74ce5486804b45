package domain

// Intent classifies the rhetorical shape of a question. It selects the
// response template used to render the answer.
type Intent string

// Recognised intents.
const (
	IntentDefinition    Intent = "definition"
	IntentHow           Intent = "how"
	IntentWhy           Intent = "why"
	IntentWhen          Intent = "when"
	IntentWhere         Intent = "where"
	IntentWho           Intent = "who"
	IntentAdvantages    Intent = "advantages"
	IntentDisadvantages Intent = "disadvantages"
	IntentExamples      Intent = "examples"
	IntentSteps         Intent = "steps"
	IntentTypes         Intent = "types"
	IntentGeneral       Intent = "general"
)

// Intents lists all intents in classification priority order.
// When several patterns match a query, the earliest intent wins.
var Intents = []Intent{
	IntentDefinition,
	IntentHow,
	IntentWhy,
	IntentWhen,
	IntentWhere,
	IntentWho,
	IntentAdvantages,
	IntentDisadvantages,
	IntentExamples,
	IntentSteps,
	IntentTypes,
	IntentGeneral,
}

// IsValid returns true if the intent is recognised.
func (i Intent) IsValid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (i Intent) String() string {
	return string(i)
}
