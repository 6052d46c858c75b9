package render

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRender_MissingScriptFails(t *testing.T) {
	dir := t.TempDir()
	r := Renderer{Script: filepath.Join(dir, "no-such-visualise.pl")}
	err := r.Render(filepath.Join(dir, "track.t"), filepath.Join(dir, "route.csv"), filepath.Join(dir, "out.png"))
	if err == nil {
		t.Fatal("rendering with a missing script must fail")
	}
}

func TestRender_NoArtifactFails(t *testing.T) {
	// Whatever the process does, no artifact at the output path is a
	// failure the caller can diagnose.
	dir := t.TempDir()
	r := Renderer{Script: "ignored"}
	out := filepath.Join(dir, "out.png")
	err := r.Render("track.t", "route.csv", out)
	if err == nil {
		t.Fatalf("render must fail when %s does not appear", out)
	}
	if !strings.Contains(err.Error(), "render") {
		t.Fatalf("error %q should identify the render stage", err)
	}
}
