package rewrite

import (
	"os"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make the rewrite fail
// harder.
func writeDebugUnformatted(outPath string, content []byte) error {
	if outPath == "" {
		return nil
	}

	// Keep it a .go file so editors can syntax highlight, but avoid colliding
	// with real output.
	debugName := strings.TrimSuffix(outPath, ".go") + ".unformatted.go"

	return os.WriteFile(debugName, content, filePerm)
}
