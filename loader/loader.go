package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"

	"github.com/aaimio/logicful-templates-example-ts/markup"
)

// ErrNoDefaultExport signals that a module provides no
// default renderer.
var ErrNoDefaultExport = errors.New("no default export")

// Loader resolves module paths to renderers.
type Loader struct {
	// Vars is the fasttemplate context applied to the text
	// and attribute values of a decoded data module.
	// Unknown tags are kept.
	Vars map[string]interface{}

	// StartTag and EndTag delimit placeholders; they
	// default to "{{" and "}}".
	StartTag string
	EndTag   string

	// Registry holds renderers for non-data modules. May
	// be nil.
	Registry *Registry
}

// dataModule is the on-disk shape of a YAML or JSON module.
type dataModule struct {
	Default *markup.Element `json:"default" yaml:"default"`
}

// ModuleName returns the base file name of path without its
// extension. A dotfile such as ".page" keeps its full name.
func ModuleName(path string) string {
	base := filepath.Base(path)

	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return base
	}

	return name
}

// Load resolves the module at path. The caller is expected
// to have checked that path exists. A module without a
// default renderer returns an error wrapping
// ErrNoDefaultExport; read and decode failures are returned
// as ordinary errors.
func (ld *Loader) Load(path string) (markup.RenderFunc, error) {
	const errCtx = "loading template module"

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ld.loadData(path, decodeYAML)
	case ".json":
		return ld.loadData(path, json.Unmarshal)
	}

	fn, ok := ld.Registry.Lookup(ModuleName(path))
	if !ok {
		return nil, fmt.Errorf(
			"%s: %s: %w", errCtx, path, ErrNoDefaultExport,
		)
	}

	return fn, nil
}

func (ld *Loader) loadData(
	path string,
	unmarshal func([]byte, interface{}) error,
) (markup.RenderFunc, error) {
	const errCtx = "loading data module"

	content, err := os.ReadFile(path) //nolint:gosec // paths from configuration
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var mod dataModule
	if err := unmarshal(content, &mod); err != nil {
		return nil, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, path, err,
		)
	}

	if mod.Default == nil {
		return nil, fmt.Errorf(
			"%s: %s: %w", errCtx, path, ErrNoDefaultExport,
		)
	}

	root := mod.Default
	ld.expand(root)

	return func() (*markup.Element, error) {
		return root, nil
	}, nil
}

// expand substitutes variables into the text and attribute
// values of a decoded tree. Substituting after decoding keeps
// values from being read as module syntax.
func (ld *Loader) expand(el *markup.Element) {
	if el == nil {
		return
	}

	startTag, endTag := ld.tags()

	el.Text = fasttemplate.ExecuteStringStd(
		el.Text, startTag, endTag, ld.Vars,
	)

	for key, val := range el.Attrs {
		el.Attrs[key] = fasttemplate.ExecuteStringStd(
			val, startTag, endTag, ld.Vars,
		)
	}

	for _, child := range el.Children {
		ld.expand(child)
	}
}

func decodeYAML(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

// tags returns the configured start/end tags, falling
// back to double-brace defaults.
func (ld *Loader) tags() (string, string) {
	startTag := ld.StartTag
	if startTag == "" {
		startTag = "{{"
	}

	endTag := ld.EndTag
	if endTag == "" {
		endTag = "}}"
	}

	return startTag, endTag
}
