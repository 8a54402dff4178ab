package outdir

import (
	"fmt"
	"os"

	"github.com/aaimio/logicful-templates-example-ts/fsprobe"
)

const dirPerm os.FileMode = 0o755

// Prepare guarantees that path denotes an existing, empty
// directory when it returns nil. A present path (file or
// directory) is deleted recursively and recreated. Errors
// leave the path in whatever state the failing step left it
// in; callers re-run to recover.
func Prepare(path string) error {
	const errCtx = "preparing output directory"

	exists, err := fsprobe.Exists(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if exists {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf(
				"%s: removing %s: %w", errCtx, path, err,
			)
		}
	}

	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf(
			"%s: creating %s: %w", errCtx, path, err,
		)
	}

	return nil
}
