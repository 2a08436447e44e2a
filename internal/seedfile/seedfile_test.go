package seedfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seeds.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_SkipsBlanksAndComments(t *testing.T) {
	path := writeSeedFile(t, "acme\n\n# a comment\n  staging  \nfintech\n")
	seeds, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"acme", "staging", "fintech"}
	if len(seeds) != len(want) {
		t.Fatalf("seeds = %v, want %v", seeds, want)
	}
	for i := range want {
		if seeds[i] != want[i] {
			t.Errorf("seeds[%d] = %q, want %q", i, seeds[i], want[i])
		}
	}
}

func TestRead_EmptyFileIsError(t *testing.T) {
	path := writeSeedFile(t, "\n# only comments\n\n")
	if _, err := Read(path); err == nil {
		t.Error("expected error for a file with no seeds")
	}
}

func TestRead_MissingFileIsError(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGroup(t *testing.T) {
	seeds := []string{"a", "b", "c", "d", "e"}

	sets := Group(seeds, 2)
	if len(sets) != 3 {
		t.Fatalf("sets = %v", sets)
	}
	if len(sets[0]) != 2 || len(sets[1]) != 2 || len(sets[2]) != 1 {
		t.Errorf("set sizes wrong: %v", sets)
	}
	if sets[2][0] != "e" {
		t.Errorf("last set = %v", sets[2])
	}
}

func TestGroup_SizeClamp(t *testing.T) {
	sets := Group([]string{"a", "b"}, 0)
	if len(sets) != 2 {
		t.Errorf("size 0 should clamp to 1, got %v", sets)
	}
}

func TestGroup_PreservesOrder(t *testing.T) {
	seeds := []string{"one", "two", "three", "four"}
	sets := Group(seeds, 3)
	var flat []string
	for _, set := range sets {
		flat = append(flat, set...)
	}
	for i := range seeds {
		if flat[i] != seeds[i] {
			t.Errorf("order not preserved: %v", sets)
		}
	}
}
