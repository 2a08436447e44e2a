package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteWords writes words one per line.
func WriteWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Writer appends wordlist output to a file, flushing after every batch
// so partial batch runs keep what they produced.
type Writer struct {
	f    *os.File
	path string
}

// NewWriter opens path for writing. With appendMode the file is opened
// for append, otherwise it is truncated. Parent directories are created
// as needed.
func NewWriter(path string, appendMode bool) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Writer{f: f, path: path}, nil
}

// Path returns the output file path.
func (w *Writer) Path() string { return w.path }

// Append writes words one per line and syncs to disk.
func (w *Writer) Append(words []string) error {
	if err := WriteWords(w.f, words); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	return w.f.Sync()
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}
