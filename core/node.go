package core

// Root returns the search-tree root for state s with g = 0.
func Root[S comparable](s S, h float64) *Node[S] {
	return &Node[S]{State: s, H: h}
}

// Child returns the node reached from n by succ, with g accumulated and the
// given heuristic estimate.
func (n *Node[S]) Child(succ Successor[S], h float64) *Node[S] {
	return &Node[S]{
		State:  succ.State,
		Parent: n,
		Action: succ.Action,
		G:      n.G + succ.Cost,
		H:      h,
	}
}

// F returns the evaluation g + w·h.
func (n *Node[S]) F(w float64) float64 {
	return n.G + w*n.H
}

// Depth returns the number of actions between the root and n.
func (n *Node[S]) Depth() int {
	d := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		d++
	}

	return d
}

// Solution reconstructs the plan ending at n: the actions in root→n order
// and the states visited, root first. A root node yields no actions and a
// single state.
func Solution[S comparable](n *Node[S]) ([]Action, []S) {
	if n == nil {
		return nil, nil
	}
	depth := n.Depth()
	actions := make([]Action, depth)
	states := make([]S, depth+1)
	// fill backwards so no reversal pass is needed
	i := depth
	for cur := n; cur != nil; cur = cur.Parent {
		states[i] = cur.State
		if cur.Parent != nil {
			actions[i-1] = cur.Action
		}
		i--
	}

	return actions, states
}

// Finish fills res with the plan ending at goal and marks it Found.
func Finish[S comparable](res *Result[S], goal *Node[S]) *Result[S] {
	res.Found = true
	res.Actions, res.States = Solution(goal)
	res.Cost = goal.G

	return res
}
