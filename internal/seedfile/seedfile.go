// Package seedfile reads seed word files for batch generation.
package seedfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read returns the seed words in a file, one per line. Blank lines and
// lines starting with # are skipped; surrounding whitespace is trimmed.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	var seeds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seed words found in %s", path)
	}
	return seeds, nil
}

// Group splits seeds into consecutive sets of at most size entries. Each
// set drives one generation.
func Group(seeds []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var sets [][]string
	for start := 0; start < len(seeds); start += size {
		end := start + size
		if end > len(seeds) {
			end = len(seeds)
		}
		sets = append(sets, seeds[start:end])
	}
	return sets
}
