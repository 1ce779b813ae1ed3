package cmd

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestSelectOutputMode(t *testing.T) {
	tests := []struct {
		diff, inline bool
		want         outputMode
	}{
		{false, false, modeShow},
		{true, false, modeDiff},
		{false, true, modeInline},
	}

	for _, tt := range tests {
		if got := selectOutputMode(tt.diff, tt.inline); got != tt.want {
			t.Errorf("selectOutputMode(%v, %v) = %v, want %v", tt.diff, tt.inline, got, tt.want)
		}
	}
}

func TestIsExcluded(t *testing.T) {
	patterns := []string{".git", "__pycache__", "*.egg-info"}

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{"__pycache__", true},
		{"mypkg.egg-info", true},
		{"src", false},
		{"models.py", false},
	}

	for _, tt := range tests {
		if got := isExcluded(tt.name, patterns); got != tt.want {
			t.Errorf("isExcluded(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(rel string) string {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x = 1\n"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	keep1 := mustWrite("a.py")
	keep2 := mustWrite("pkg/b.pyi")
	mustWrite("pkg/readme.txt")
	mustWrite("__pycache__/cached.py")
	mustWrite(".git/hooks/hook.py")

	t.Run("walks directories", func(t *testing.T) {
		got, err := collectFiles([]string{root}, []string{".git", "__pycache__"})
		if err != nil {
			t.Fatalf("collectFiles failed: %v", err)
		}

		sort.Strings(got)
		want := []string{keep1, keep2}
		sort.Strings(want)

		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("file %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("files taken as given", func(t *testing.T) {
		plain := mustWrite("notes.txt")

		got, err := collectFiles([]string{plain}, nil)
		if err != nil {
			t.Fatalf("collectFiles failed: %v", err)
		}
		if len(got) != 1 || got[0] != plain {
			t.Errorf("explicit file arguments must pass through, got %v", got)
		}
	})

	t.Run("missing argument errors", func(t *testing.T) {
		if _, err := collectFiles([]string{filepath.Join(root, "missing.py")}, nil); err == nil {
			t.Error("expected error for missing path")
		}
	})
}
