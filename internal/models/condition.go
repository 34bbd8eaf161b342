package models

import "strings"

// Condition is the closed set of recognized property condition labels.
// Free-text input is normalized through ParseCondition; anything outside the
// known set maps to ConditionUnknown rather than silently matching nothing.
type Condition int

const (
	ConditionUnknown Condition = iota
	ConditionPoor
	ConditionFair
	ConditionAverage
	ConditionGood
	ConditionVeryGood
	ConditionExcellent
)

// ParseCondition normalizes a free-text condition label, case-insensitively.
func ParseCondition(label string) Condition {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "poor":
		return ConditionPoor
	case "fair":
		return ConditionFair
	case "average":
		return ConditionAverage
	case "good":
		return ConditionGood
	case "very good":
		return ConditionVeryGood
	case "excellent":
		return ConditionExcellent
	default:
		return ConditionUnknown
	}
}

func (c Condition) String() string {
	switch c {
	case ConditionPoor:
		return "poor"
	case ConditionFair:
		return "fair"
	case ConditionAverage:
		return "average"
	case ConditionGood:
		return "good"
	case ConditionVeryGood:
		return "very good"
	case ConditionExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// Favorable reports whether the label should lift the condition factor.
func (c Condition) Favorable() bool {
	return c == ConditionGood || c == ConditionVeryGood || c == ConditionExcellent
}

// Neutral reports whether the label neither lifts nor penalizes.
func (c Condition) Neutral() bool {
	return c == ConditionFair || c == ConditionAverage
}

// NeedsImprovement reports whether the label should trigger a remediation
// suggestion.
func (c Condition) NeedsImprovement() bool {
	return c == ConditionPoor || c == ConditionFair
}
