// Package types holds the value types shared across homeman: packages and the
// closed set of file and package statuses, together with the table that
// reduces per-file statuses to a package status.
package types
