package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aaimio/logicful-templates-example-ts/loader"
	"github.com/aaimio/logicful-templates-example-ts/markup"
)

const (
	outputExt  = ".html"
	outputPerm = 0o644
)

// OutputName derives the artifact file name for an input:
// its base name without extension, plus ".html".
func OutputName(inputPath string) string {
	return loader.ModuleName(inputPath) + outputExt
}

// renderAndWrite compiles render with pretty-printing and
// writes the result into outDir, overwriting any file of the
// same name. It returns the written path.
func renderAndWrite(
	outDir string,
	inputPath string,
	render markup.RenderFunc,
) (string, error) {
	const errCtx = "writing compiled template"

	contents, err := markup.Compile(
		func() (*markup.Element, error) { return render() },
		markup.Options{Pretty: true},
	)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", errCtx, inputPath, err)
	}

	outPath := filepath.Join(outDir, OutputName(inputPath))

	if err := os.WriteFile(
		outPath, []byte(contents), outputPerm,
	); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return outPath, nil
}
