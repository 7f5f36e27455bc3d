// Package chart renders the entropy and complexity series of a run as a
// line chart over the time axis.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mesh-physics/rule30/pkg/types"
)

// RenderSeries writes a PNG line chart of both metric series to path.
func RenderSeries(res *types.Result, path string) error {
	if res == nil || res.Series.Len() == 0 {
		return types.ErrEmptyGrid
	}

	steps := make([]float64, res.Series.Len())
	for i := range steps {
		steps[i] = float64(i)
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		XAxis: chart.XAxis{
			Name: "Time Step",
		},
		YAxis: chart.YAxis{
			Name: "Value",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 1,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Entropy",
				XValues: steps,
				YValues: res.Series.Entropy,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Complexity",
				XValues: steps,
				YValues: res.Series.Complexity,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 140, B: 0, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
