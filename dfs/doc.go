// Package dfs provides depth-first search over a core.Problem.
//
// The frontier is an explicit LIFO stack rather than recursion, so the
// expansion notification and draw callback run after every pop. A state is
// marked reached when it is pushed and is therefore pushed at most once.
//
// Notifications fire when a node is popped (the root included), and the
// goal test runs on the popped node. DFS makes no optimality promise on plan
// length; it finds a plan whenever the goal is reachable and the space is
// finite, and reports Result.Found == false otherwise.
package dfs
