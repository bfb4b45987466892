package fileutils

import (
	"fmt"
	"os"
)

// ValidateInputFile checks that filename names a readable regular path.
// Empty files are valid and simply hold no levels.
func ValidateInputFile(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", filename)
		}
		return fmt.Errorf("cannot access input file %s: %w", filename, err)
	}

	if info.IsDir() {
		return fmt.Errorf("input path is a directory, not a file: %s", filename)
	}

	return nil
}
