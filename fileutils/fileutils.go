package fileutils

import (
	"fmt"
	"os"
)

// OpenInput opens a level file for reading. The caller closes it.
func OpenInput(filename string) (*os.File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	return file, nil
}
