package rewrite

import (
	"fmt"
	"os"
)

// File permission for generated output.
const filePerm = 0o644

// WriteResult writes a processed file to its output path.
func WriteResult(res *FileResult) error {
	if err := os.WriteFile(res.OutputPath, res.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", res.OutputPath, err)
	}

	return nil
}
