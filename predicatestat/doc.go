// Package predicatestat provides optional, read-only reporting over
// the predicate package's adaptive dispatch: counters recording how
// often the filtered path certifies a sign versus how often the exact
// fallback triggers. A mesh-generation or triangulation caller that
// suspects its input distribution is pathologically degenerate (e.g.
// many near-cocircular points) can Collect the counters after a run to
// find out, without the predicate package itself carrying any
// observability dependency.
//
// Nothing in this package is required by predicate: the predicate
// surface remains allocation-free on its own hot path. Everything here
// is a caller-side view, safe for concurrent use by any number of
// goroutines, same as the predicates themselves after expansion.Init.
package predicatestat
