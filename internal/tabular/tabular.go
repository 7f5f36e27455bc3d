// Package tabular writes the per-timestep metrics of a run as delimited
// text tables: one file per series plus a composite file, one row per
// grid timestep, fixed 8-decimal floating-point formatting.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-physics/rule30/pkg/types"
)

// Files names the three tables written for a run.
type Files struct {
	Entropy    string
	Complexity string
	Composite  string
}

// Write emits the entropy, complexity, and composite tables for res into
// dir, prefixed with name. It returns the paths of the written files.
func Write(dir, name string, res *types.Result) (Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("create output directory: %w", err)
	}

	files := Files{
		Entropy:    filepath.Join(dir, name+"_entropy.csv"),
		Complexity: filepath.Join(dir, name+"_complexity.csv"),
		Composite:  filepath.Join(dir, name+"_composite.csv"),
	}

	if err := writeTable(files.Entropy, []string{"time_step", "entropy"}, res, func(t int) []string {
		return []string{fmt.Sprintf("%d", t), fmt.Sprintf("%.8f", res.Series.Entropy[t])}
	}); err != nil {
		return Files{}, err
	}

	if err := writeTable(files.Complexity, []string{"time_step", "complexity"}, res, func(t int) []string {
		return []string{fmt.Sprintf("%d", t), fmt.Sprintf("%.8f", res.Series.Complexity[t])}
	}); err != nil {
		return Files{}, err
	}

	if err := writeTable(files.Composite, []string{"time_step", "entropy", "complexity"}, res, func(t int) []string {
		return []string{
			fmt.Sprintf("%d", t),
			fmt.Sprintf("%.8f", res.Series.Entropy[t]),
			fmt.Sprintf("%.8f", res.Series.Complexity[t]),
		}
	}); err != nil {
		return Files{}, err
	}

	return files, nil
}

// writeTable writes a header plus one record per timestep.
func writeTable(path string, header []string, res *types.Result, record func(t int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for t := 0; t < res.Series.Len(); t++ {
		if err := w.Write(record(t)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
