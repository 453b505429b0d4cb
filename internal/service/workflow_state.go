package service

import (
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
)

var workflowTransitions = map[string]map[string]struct{}{
	domain.StepAmount: {
		domain.StepRecipient: {},
	},
	domain.StepRecipient: {
		domain.StepAmount: {},
		domain.StepReview: {},
	},
	domain.StepReview: {
		domain.StepRecipient: {},
		domain.StepSubmitted: {},
	},
	domain.StepSubmitted: {},
}

// nextStep is the forward edge taken by Advance. REVIEW moves forward only
// through Submit.
var nextStep = map[string]string{
	domain.StepAmount:    domain.StepRecipient,
	domain.StepRecipient: domain.StepReview,
}

var previousStep = map[string]string{
	domain.StepRecipient: domain.StepAmount,
	domain.StepReview:    domain.StepRecipient,
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

func canTransition(current, next string) bool {
	current = normalizeState(current)
	next = normalizeState(next)
	nextStates, ok := workflowTransitions[current]
	if !ok {
		return false
	}
	_, ok = nextStates[next]
	return ok
}
