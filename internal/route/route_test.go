package route

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pvoss/raceline/internal/plan"
)

func TestWrite_FlipsRowAxis(t *testing.T) {
	// 3-row grid: row 1 maps to written row 3-1-1 = 1, row 0 to 2.
	path := []plan.State{
		{Row: 1, Col: 1},
		{Row: 1, Col: 2, VCol: 1},
		{Row: 0, Col: 4, VRow: -1, VCol: 2},
	}
	var sb strings.Builder
	if err := Write(&sb, path, 3); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "1,1\n2,1\n4,2\n"
	if sb.String() != want {
		t.Fatalf("route output %q, want %q", sb.String(), want)
	}
}

func TestWrite_EmptyPath(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, nil, 5); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if sb.String() != "" {
		t.Fatalf("empty path should write nothing, got %q", sb.String())
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "route.csv")
	path := []plan.State{{Row: 2, Col: 0}}
	if err := WriteFile(name, path, 4); err != nil {
		t.Fatalf("write file failed: %v", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "0,1\n" {
		t.Fatalf("file contents %q, want %q", data, "0,1\n")
	}
}
