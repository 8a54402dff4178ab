package variables

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Load merges stamp info files and NAME=VALUE variables into
// a single context map suitable for fasttemplate.
func Load(
	stampFiles []string,
	vars []string,
) (map[string]interface{}, error) {
	const errCtx = "loading template variables"

	stamps, err := LoadStamps(stampFiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx := make(map[string]interface{}, len(stamps)+2*len(vars))
	for key, val := range stamps {
		ctx[key] = val
	}

	for _, vr := range vars {
		name, value, ok := strings.Cut(vr, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf(
				"%s: variable must be NAME=value, got %q",
				errCtx, vr,
			)
		}

		val := fasttemplate.ExecuteStringStd(value, "{", "}", stamps)

		ctx[name] = val
		ctx["variables."+name] = val
	}

	return ctx, nil
}

// LoadStamps reads stamp info files into a map. Each line is
// "KEY VALUE" split at the first space; lines without a
// space are skipped. Later files override earlier ones.
func LoadStamps(files []string) (map[string]interface{}, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]interface{})

	for _, sf := range files {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		for _, line := range strings.Split(string(content), "\n") {
			key, val, ok := strings.Cut(strings.TrimSuffix(line, "\r"), " ")
			if ok {
				stamps[key] = val
			}
		}
	}

	return stamps, nil
}
