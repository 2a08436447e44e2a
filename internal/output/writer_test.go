package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteWords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWords(&buf, []string{"alpha", "bravo", "charlie"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "alpha\nbravo\ncharlie\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteWords_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWords(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestWriter_Truncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWriter(path, false)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append([]string{"fresh"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fresh\n" {
		t.Errorf("file = %q, want %q", data, "fresh\n")
	}
}

func TestWriter_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("existing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWriter(path, true)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append([]string{"added"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	w.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing\nadded\n" {
		t.Errorf("file = %q", data)
	}
}

func TestWriter_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
	w, err := NewWriter(path, false)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Append([]string{"word"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	w.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestWriter_MultipleAppendsFlushEach(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w, err := NewWriter(path, false)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	if err := w.Append([]string{"one", "two"}); err != nil {
		t.Fatal(err)
	}
	// Visible on disk before Close.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("after first append: %q", data)
	}

	if err := w.Append([]string{"three"}); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "one\ntwo\nthree\n" {
		t.Errorf("after second append: %q", data)
	}
}
