package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"brew_co/internal/models"
)

var ErrInvalidTransition = errors.New("invalid order transition")

// Transition is one queue action and the status change it performs.
type Transition struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Action models.QueueAction
}

// validTransitions is the authoritative order lifecycle.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing, Action: models.ActionStartBrewing},
	{From: models.StatusPreparing, To: models.StatusReady, Action: models.ActionMarkReady},
	{From: models.StatusReady, To: models.StatusCompleted, Action: models.ActionCompleteOrder},
	// Cancel is reachable from every active status
	{From: models.StatusPending, To: models.StatusCanceled, Action: models.ActionCancelOrder},
	{From: models.StatusPreparing, To: models.StatusCanceled, Action: models.ActionCancelOrder},
	{From: models.StatusReady, To: models.StatusCanceled, Action: models.ActionCancelOrder},
}

type transitionKey struct {
	From   models.OrderStatus
	Action models.QueueAction
}

var transitionMap = func() map[transitionKey]models.OrderStatus {
	m := make(map[transitionKey]models.OrderStatus, len(validTransitions))
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.Action}] = t.To
	}
	return m
}()

// Next returns the status an order in from moves to when action is applied.
func Next(from models.OrderStatus, action models.QueueAction) (models.OrderStatus, error) {
	if to, ok := transitionMap[transitionKey{From: from, Action: action}]; ok {
		return to, nil
	}
	return "", fmt.Errorf("%w: %q is not allowed from %s, valid actions are: %s",
		ErrInvalidTransition, action, from, describeValidFrom(from))
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

func ValidActionsFrom(status models.OrderStatus) []models.QueueAction {
	var actions []models.QueueAction
	for _, t := range validTransitions {
		if t.From == status {
			actions = append(actions, t.Action)
		}
	}
	return actions
}

// IsActive reports whether an order in this status belongs in the queue.
func IsActive(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) > 0
}

func IsValidAction(action models.QueueAction) bool {
	for _, t := range validTransitions {
		if t.Action == action {
			return true
		}
	}
	return false
}

func describeValidFrom(status models.OrderStatus) string {
	actions := ValidActionsFrom(status)
	if len(actions) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
