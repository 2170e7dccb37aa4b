// Package input acquires the raw byte sequence the statistics run over.
// It is deliberately thin: the core never performs I/O, so everything that
// touches a file or stdin lives here.
package input

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path argument that selects standard input.
const Stdin = "-"

// ReadSequence returns the raw bytes of the file at path, or all of stdin
// when path is empty or "-". The returned slice is owned by the caller;
// nothing downstream retains or mutates it.
func ReadSequence(path string) ([]byte, error) {
	if path == "" || path == Stdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}
	return data, nil
}
