// Package render drives the external typesetting pipeline that turns a
// track file plus a route file into a finished visualisation artifact. The
// pipeline is a perl script (optionally run inside a container); this
// package only launches it and checks the outcome, it never inspects the
// artifact's contents.
package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Renderer describes how to invoke the external visualiser.
type Renderer struct {
	Script    string // path to the perl script, e.g. "src/visualise.pl"
	UseDocker bool   // wrap the invocation in `docker run`
	Image     string // container image when UseDocker is set
}

// Render produces the visualisation artifact at outPath from the given
// track and route files. It fails when the process exits non-zero or when
// no non-empty artifact appears at outPath; captured process output is
// folded into the returned error so failures stay diagnosable. The already
// computed route data is untouched either way.
func (r Renderer) Render(trackPath, routePath, outPath string) error {
	var cmd *exec.Cmd
	if r.UseDocker {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		cmd = exec.Command("docker", "run", "--rm",
			"-v", wd+":/work", "-w", "/work",
			r.Image, "perl", r.Script, trackPath, routePath, outPath)
	} else {
		cmd = exec.Command("perl", r.Script, trackPath, routePath, outPath)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("render %s: %w: %s", filepath.Base(r.Script), err, out)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return fmt.Errorf("render produced no artifact at %s: %w", outPath, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("render produced an empty artifact at %s", outPath)
	}
	return nil
}
