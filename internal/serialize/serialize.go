// Package serialize emits the CLI's JSON output. Encoding is deterministic
// (sorted object keys, fixed indentation) so emitted policy documents and
// resolution results never diff spuriously between runs.
package serialize

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// JSON encodes v as two-space indented JSON with a trailing newline.
func JSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}
	return append(data, '\n'), nil
}

// Write encodes v and writes it to path, or to stdout when path is empty.
func Write(v any, path string) error {
	data, err := JSON(v)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
