package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := repoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}

func TestAssertGoldenAcceptsMatchingFrame(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(repoRoot(t), "testdata", "lcd_browse.golden"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	AssertGolden(t, "lcd_browse.golden", string(data))
}
