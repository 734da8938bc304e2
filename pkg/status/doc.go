// Package status infers installation state from the filesystem.
//
// The Classifier looks at one package file and its mirror in the home
// directory. The Aggregator classifies every file of a package and folds the
// result into a PackageState, whose package status is a pure function of
// the set of distinct file statuses. Nothing is cached: each call reads the
// filesystem again.
package status
