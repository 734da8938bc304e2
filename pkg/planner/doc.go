// Package planner decides what a bulk install or uninstall should do.
//
// Planning happens in two stages. First every requested package must exist;
// a single missing one aborts the whole request before anything else is
// looked at. Then each package's state sorts it into one of three buckets:
// skipped with a notice, refused with an error, or queued for the linker.
//
// Execution hands the queue to the linker in a single call, and only when
// the plan holds no errors at all. Install refuses broken packages;
// uninstall accepts every package that is not already uninstalled or empty,
// broken ones included.
package planner
