// Package testutil provides helpers for tests that need real package trees
// and home directories.
//
// Environments live on the real filesystem under t.TempDir().
package testutil
