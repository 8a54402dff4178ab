// Package loader resolves template modules to renderers.
//
// A module is found in one of two ways. Data modules (.yaml, .yml, .json)
// are read from disk and decoded; their top-level "default" key holds the
// markup tree, whose text and attribute values are then expanded with
// valyala/fasttemplate against a variables context.
// Any other file is looked up by name in a Registry of renderers compiled
// into the binary. Either way, a module without a default renderer yields
// ErrNoDefaultExport, which callers treat as "skip this input".
package loader
