package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pvoss/raceline/internal/plan"
	"github.com/pvoss/raceline/internal/render"
	"github.com/pvoss/raceline/internal/route"
	"github.com/pvoss/raceline/internal/track"
	"github.com/pvoss/raceline/internal/viewer"
)

func main() {
	var trackPath string
	var outputPath string
	var depth int
	var visualize bool
	var narrowRadius int
	var constantHeuristic bool
	var renderScript string
	var renderOut string
	var renderDocker bool
	var renderImage string
	var snapshotPath string

	flag.StringVar(&trackPath, "track", "tracks/track_01.t", "track file to plan on")
	flag.StringVar(&trackPath, "t", "tracks/track_01.t", "shorthand for -track")
	flag.StringVar(&outputPath, "output", "route.csv", "route output path")
	flag.StringVar(&outputPath, "o", "route.csv", "shorthand for -output")
	flag.IntVar(&depth, "depth", 1, "horizon graph depth per planning chunk")
	flag.IntVar(&depth, "d", 1, "shorthand for -depth")
	flag.BoolVar(&visualize, "visualize", false, "open the diagnostic viewer after planning")
	flag.BoolVar(&visualize, "v", false, "shorthand for -visualize")
	flag.IntVar(&narrowRadius, "narrow-radius", 2, "narrowness field window radius")
	flag.BoolVar(&constantHeuristic, "constant-heuristic", false, "debug: replace the weighted chunk heuristic with a constant")
	flag.StringVar(&renderScript, "render-script", "", "perl visualiser script; empty skips rendering")
	flag.StringVar(&renderOut, "render-out", "visualization.png", "rendering artifact path")
	flag.BoolVar(&renderDocker, "render-docker", false, "run the visualiser inside docker")
	flag.StringVar(&renderImage, "render-image", "perl:5", "container image for -render-docker")
	flag.StringVar(&snapshotPath, "snapshot", "", "write a PNG snapshot of track and path")
	flag.Parse()

	if depth < 1 {
		fmt.Println("error: -depth must be >= 1")
		return
	}

	grid, err := track.Load(trackPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(grid.DisplayString())

	start, err := grid.StartPosition()
	if err != nil {
		fmt.Printf("error: %v — nothing to plan\n", err)
		return
	}
	if len(grid.GoalPositions()) == 0 {
		fmt.Println("error: track has no goal cell — nothing to plan")
		return
	}

	h := plan.DefaultHeuristics()
	h.Constant = constantHeuristic
	planner := plan.NewPlanner(grid, depth, narrowRadius, h)

	initial := plan.State{Row: start.Row, Col: start.Col}
	result := planner.Plan(initial)

	fmt.Printf("planning finished: %s (chunks=%d states=%d)\n",
		result.Reason, result.Chunks, len(result.Path))
	if !result.GoalReached {
		fmt.Println("warning: goal not reached, writing partial route")
	}

	if err := route.WriteFile(outputPath, result.Path, grid.Rows()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("route written to %s\n", outputPath)

	if snapshotPath != "" {
		if err := viewer.WriteSnapshot(snapshotPath, grid, result.Path, 8); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("snapshot written to %s\n", snapshotPath)
	}

	if renderScript != "" {
		r := render.Renderer{Script: renderScript, UseDocker: renderDocker, Image: renderImage}
		if err := r.Render(trackPath, outputPath, renderOut); err != nil {
			// The route file is already on disk; a broken render pipeline
			// should not look like a planning failure.
			fmt.Printf("render failed: %v\n", err)
		} else {
			fmt.Printf("visualisation written to %s\n", renderOut)
		}
	}

	if visualize {
		report := sessionReport(trackPath, depth, result)
		v := viewer.New(grid, planner.DistField(), planner.NarrownessField(), result.Path, report)
		if err := v.Run(); err != nil {
			log.Fatal(err)
		}
	}
}

// sessionReport formats the plain-text summary the viewer copies to the
// clipboard.
func sessionReport(trackPath string, depth int, result plan.Result) string {
	s := fmt.Sprintf("raceline report\ntrack=%s depth=%d\nstop=%s chunks=%d states=%d goal=%v\n",
		trackPath, depth, result.Reason, result.Chunks, len(result.Path), result.GoalReached)
	for i, st := range result.Path {
		s += fmt.Sprintf("%3d: pos=(%d,%d) vel=(%d,%d)\n", i, st.Row, st.Col, st.VRow, st.VCol)
	}
	return s
}
