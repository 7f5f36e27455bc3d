// The run command executes one or all scenarios end to end: evolve,
// compute statistics, persist, and plot.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mesh-physics/rule30/internal/chart"
	"github.com/mesh-physics/rule30/internal/dataset"
	"github.com/mesh-physics/rule30/internal/paths"
	"github.com/mesh-physics/rule30/internal/raster"
	"github.com/mesh-physics/rule30/internal/tabular"
	"github.com/mesh-physics/rule30/internal/timing"
	"github.com/mesh-physics/rule30/pkg/solver"
	"github.com/mesh-physics/rule30/pkg/types"
)

var (
	flagScenarioFile string
	flagAll          bool
	flagCores        int
	flagScale        int
	flagNoDataset    bool
	flagNoPlot       bool
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a scenario end to end",
	Long: `Run evolves the automaton for the named scenario (a YAML file in the
configuration directory), computes the per-timestep statistics, and
writes the dataset, CSV tables, and plots into the output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagScenarioFile, "file", "f", "", "explicit scenario file path (bypasses the config directory)")
	runCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "run every scenario in the config directory")
	runCmd.Flags().IntVar(&flagCores, "cores", 0, "worker count for the statistics stage (default: all logical cores)")
	runCmd.Flags().IntVar(&flagScale, "scale", 0, "raster upscaling factor (overrides scenario plot_scale)")
	runCmd.Flags().BoolVar(&flagNoDataset, "no-dataset", false, "skip writing the SQLite dataset")
	runCmd.Flags().BoolVar(&flagNoPlot, "no-plot", false, "skip writing the PNG plots")
}

func runRun(cmd *cobra.Command, args []string) error {
	scenarios, err := collectScenarios(args)
	if err != nil {
		return err
	}

	for i, path := range scenarios {
		sc, err := loadScenario(path)
		if err != nil {
			return err
		}
		if !flagQuiet && len(scenarios) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "\n=== scenario %d/%d: %s ===\n", i+1, len(scenarios), sc.Name)
		}
		if err := runScenario(cmd.OutOrStdout(), sc); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}
	return nil
}

// collectScenarios resolves the scenario file list from the --file flag,
// the positional name, or --all.
func collectScenarios(args []string) ([]string, error) {
	if flagScenarioFile != "" {
		return []string{flagScenarioFile}, nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	if flagAll {
		matches, err := filepath.Glob(filepath.Join(configDir, "*.yaml"))
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no scenario files in %s (run \"rule30 init\" first)", configDir)
		}
		sort.Strings(matches)
		return matches, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("a scenario name, --file, or --all is required")
	}

	name := args[0]
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	path := filepath.Join(configDir, name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("scenario file not found: %s", path)
	}
	return []string{path}, nil
}

// runScenario executes one scenario and writes its artifacts.
func runScenario(out io.Writer, sc scenario) error {
	name := sc.fileName()
	outputDir, err := paths.ResolveOutputDir(flagOutputDir, sc.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	scale := sc.Scale
	if flagScale > 0 {
		scale = flagScale
	}
	saveDataset := sc.SaveDataset && !flagNoDataset
	savePlot := sc.SavePlot && !flagNoPlot

	timer := timing.New()
	timer.Start("total")

	var res *types.Result
	err = timer.Section("solve", func() error {
		if !flagQuiet {
			fmt.Fprintf(out, "[1/4] Evolving %d cells for %d steps...\n", sc.Width, sc.Steps)
		}

		var opts []solver.Option
		if flagCores > 0 {
			opts = append(opts, solver.WithWorkers(flagCores))
		}
		if !flagQuiet && sc.Steps > 0 {
			bar := progressbar.NewOptions(sc.Steps,
				progressbar.OptionSetDescription("evolving"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
			opts = append(opts, solver.WithProgress(func(step int) { _ = bar.Add(1) }))
		}

		var runErr error
		res, runErr = solver.New(sc.params(), opts...).Run()
		return runErr
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		printSummary(out, res)
	}

	if saveDataset {
		err = timer.Section("dataset", func() error {
			if !flagQuiet {
				fmt.Fprintln(out, "[2/4] Writing dataset...")
			}
			store := dataset.NewStore()
			if err := store.Attach(outputDir); err != nil {
				return err
			}
			defer store.Detach()

			metadata := map[string]string{
				"scenario_name": sc.Name,
				"colormap":      sc.Colormap,
			}
			runID, err := store.SaveRun(res, name, metadata)
			if err != nil {
				return err
			}
			if !flagQuiet {
				fmt.Fprintf(out, "      run %s -> %s\n", runID, filepath.Join(outputDir, dataset.DatasetFileName))
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	err = timer.Section("tables", func() error {
		if !flagQuiet {
			fmt.Fprintln(out, "[3/4] Writing CSV tables...")
		}
		files, err := tabular.Write(outputDir, name, res)
		if err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Fprintf(out, "      %s\n      %s\n      %s\n", files.Entropy, files.Complexity, files.Composite)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if savePlot {
		err = timer.Section("plot", func() error {
			if !flagQuiet {
				fmt.Fprintln(out, "[4/4] Rendering plots...")
			}

			img, err := raster.Render(res.Grid, raster.Options{Palette: sc.Colormap, Scale: scale})
			if err != nil {
				return err
			}
			gridPath := filepath.Join(outputDir, name+".png")
			if err := raster.WritePNG(gridPath, img); err != nil {
				return err
			}

			// A line chart needs at least two timesteps.
			if res.Series.Len() > 1 {
				seriesPath := filepath.Join(outputDir, name+"_series.png")
				if err := chart.RenderSeries(res, seriesPath); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	timer.Stop("total")
	if !flagQuiet {
		printTiming(out, timer)
	}
	return nil
}

// printSummary prints the aggregate statistics of a completed run.
func printSummary(out io.Writer, res *types.Result) {
	last := res.Series.Len() - 1
	fmt.Fprintf(out, "      final entropy:    %.4f\n", res.Series.Entropy[last])
	fmt.Fprintf(out, "      mean entropy:     %.4f +/- %.4f\n", res.Aggregates.MeanEntropy, res.Aggregates.StdEntropy)
	fmt.Fprintf(out, "      mean complexity:  %.4f +/- %.4f\n", res.Aggregates.MeanComplexity, res.Aggregates.StdComplexity)
	fmt.Fprintf(out, "      final density:    %.4f\n", res.Aggregates.FinalDensity)
}

// printTiming prints the per-section wall-clock summary.
func printTiming(out io.Writer, timer *timing.Timer) {
	times := timer.Times()
	fmt.Fprintln(out, "timing:")
	for _, name := range timer.Names() {
		fmt.Fprintf(out, "      %-10s %8.2fs\n", name, times[name].Seconds())
	}
}
