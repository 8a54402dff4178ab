// Package variables builds the substitution context used to expand template
// modules. Stamp info files contribute KEY VALUE pairs; explicit NAME=VALUE
// variables are expanded against the stamps with single-brace tags and
// stored under both NAME and variables.NAME, overriding stamps.
package variables
