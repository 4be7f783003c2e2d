package cmd

import (
	"io"
	"os"

	"github.com/klauspost/readahead"
)

// stdinSource is the special path indicating stdin.
const stdinSource = "-"

// readSource reads the complete contents of the named source, which may
// be a file path or [stdinSource]. The reader is wrapped with async
// read-ahead so I/O overlaps with downstream processing.
func readSource(path string) (string, error) {
	var r io.Reader

	if path == stdinSource {
		r = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer file.Close()

		r = file
	}

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// sourceLabel returns the name used for a source in output and logs.
func sourceLabel(path string) string {
	if path == stdinSource {
		return "(stdin)"
	}

	return path
}
