// Package fsprobe answers read-only questions about the filesystem: whether
// a path exists, and what the sha256 digest of a written file is. Exists
// separates "not found" from every other stat failure so callers can treat
// the former as a skip and the latter as fatal.
package fsprobe
