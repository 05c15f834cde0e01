// Package pagerank estimates the PageRank of every page of a LinkGraph.
//
// Two estimators share the random-surfer model:
//   - Sample walks the graph for a fixed number of samples and reports visit
//     frequencies. It is approximate and never fails once its settings are valid.
//   - Iterate applies the PageRank recurrence until no page changes by
//     Threshold or more. It is deterministic.
//
// Both treat a dangling page (no outbound links) as linking to every page of
// the corpus, so their results agree in expectation.
//
// # Termination
//
// For a damping factor d in [0, 1) the recurrence is a contraction with
// factor d in the L1 norm, so Iterate converges from any start. The iteration
// cap (MaxIterations) only guards against misconfiguration; it returns
// ErrNotConverged instead of looping forever.
package pagerank
