// Package core defines the Problem abstraction, search Node, sentinel errors
// and the Result type shared by every strategy.
package core

import (
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem indicates that a nil Problem was passed to a strategy.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNilHeuristic indicates that a heuristic-guided strategy received no heuristic.
	ErrNilHeuristic = errors.New("core: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")

	// ErrCallback wraps an error returned by an expansion, draw or probe hook.
	ErrCallback = errors.New("core: callback failed")

	// ErrExpansionLimit is returned when a search exceeds WithMaxExpansions.
	ErrExpansionLimit = errors.New("core: expansion limit exceeded")

	// ErrNoPath signals that the frontier or bound was exhausted without
	// reaching a goal. Strategies never return it directly; see Result.Err.
	ErrNoPath = errors.New("core: no path found")
)

// Action labels a unit transition between two states, e.g. "N" or "SE".
type Action string

// Successor is one (action, state) pair produced by Problem.Successors,
// together with the step cost of taking Action.
type Successor[S comparable] struct {
	Action Action
	State  S
	Cost   float64
}

// Problem is the state space consumed by every strategy.
// Implementations must be deterministic and side-effect-free: Successors
// must enumerate in a fixed order for reproducible tie-breaking.
type Problem[S comparable] interface {
	Initial() S
	IsGoal(s S) bool
	Successors(s S) []Successor[S]
}

// GoalProblem is a Problem with a single, explicit goal state.
type GoalProblem[S comparable] interface {
	Problem[S]
	Goal() S
}

// Heuristic estimates the remaining cost from s to the goal.
// It must return a non-negative value.
type Heuristic[S comparable] func(s S) float64

// Node is a search-tree node. Nodes are linked to their parent for path
// reconstruction and are never shared between concurrent searches.
//
// H is only meaningful for heuristic-guided strategies; uninformed
// strategies leave it at zero.
type Node[S comparable] struct {
	State  S
	Parent *Node[S]
	Action Action
	G      float64
	H      float64
}

// Result holds the outcome of a search:
//   - Found:      whether a goal state was reached.
//   - Actions:    the action sequence from the initial state to the goal.
//   - States:     the visited states, initial first and goal last (len = len(Actions)+1).
//   - Cost:       accumulated path cost g of the goal node.
//   - Expanded:   number of expansion notifications fired.
//   - Order:      states in notification order, only with WithRecordOrder.
//   - Iterations: IDA* bound iterations (0 for single-pass strategies).
type Result[S comparable] struct {
	Found      bool
	Actions    []Action
	States     []S
	Cost       float64
	Expanded   int
	Order      []S
	Iterations int
}

// Err returns ErrNoPath when the search finished without reaching a goal,
// nil otherwise.
func (r *Result[S]) Err() error {
	if r == nil || !r.Found {
		return ErrNoPath
	}

	return nil
}

// Len returns the number of actions in the plan.
func (r *Result[S]) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Actions)
}
