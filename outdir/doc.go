// Package outdir prepares the build output directory. Prepare leaves the
// directory existing and empty: an absent directory is created, a present
// one is removed recursively and created again.
package outdir
