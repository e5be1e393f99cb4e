package assets

import (
	"fmt"
	"os"
)

// ReadFont reads a TTF/OTF file.
func ReadFont(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("read font %q: empty file", path)
	}
	return b, nil
}
