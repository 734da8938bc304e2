// Package filesystem provides the read-only filesystem view used to inspect
// package trees and the home directory.
//
// Creating and removing links is left to the external linker, so the FS
// interface only exposes queries.
package filesystem
