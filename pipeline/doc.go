// Package pipeline drives a template build. Run prepares the output
// directory, then walks the configured inputs in declared order: a missing
// file or a module without a default export is logged as a warning and
// skipped, everything else is compiled with pretty-printing and written to
// <base-name>.html in the output directory. Directory, compile and write
// failures abort the run.
//
// Steps run strictly one after another; no input is processed concurrently
// with another.
package pipeline
