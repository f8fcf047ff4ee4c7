// Package idastar provides iterative-deepening A* in three variants sharing
// one bound loop.
//
// Bound loop:
//
//   - bound starts at w·h(initial);
//   - each iteration runs a depth-first probe that cuts any node with
//     f = g + w·h above the bound and records the smallest such f;
//   - that value becomes the next bound; if none was recorded (+Inf) the
//     goal is unreachable and Result.Found is false.
//
// Only values strictly above the current bound are next-bound candidates,
// so the bound grows every iteration and the loop always makes progress.
//
// Variants:
//
//   - Search:      baseline. Goal tested when a successor is generated.
//   - SearchMemo:  per-iteration threshold cache plus heuristic relaxation
//     h(child) = max(h(child), h(parent) − cost). Goal tested on entry.
//   - SearchTable: precomputed obstacle-biased estimates, successors ordered
//     by goal-direction deviation then density, dead ends pruned. Requires a
//     Terrain. Goal tested on entry.
//
// Every variant keeps a path-scoped visited set: a state is added on entry
// and removed when the probe returns, whatever the exit path, so a state
// is never repeated along one path yet may be revisited through another.
// OnExpand fires once per generated successor; WithOnProbe reports the
// statistics of each finished iteration.
//
// Complexity: memory O(d) for a plan of depth d (plus O(V) for the memo
// cache or the table); time can be exponential in d on graphs with many
// equal-cost paths, which is why WithMaxExpansions is useful as a ceiling.
package idastar
