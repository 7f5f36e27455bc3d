// Scenario configuration loading for the rule30 CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-physics/rule30/pkg/types"
)

// Scenario config keys.
const (
	cfgKeyName      = "scenario_name"
	cfgKeyWidth     = "grid_width"
	cfgKeySteps     = "time_steps"
	cfgKeyCenter    = "center_position"
	cfgKeyDataset   = "save_dataset"
	cfgKeyPlot      = "save_plot"
	cfgKeyColormap  = "colormap"
	cfgKeyScale     = "plot_scale"
	cfgKeyOutputDir = "output_dir"
)

// scenario holds one run's configuration as loaded from a YAML file.
type scenario struct {
	Name        string
	Width       int
	Steps       int
	Center      int
	SaveDataset bool
	SavePlot    bool
	Colormap    string
	Scale       int
	OutputDir   string
}

// params converts the scenario to solver parameters. Defaults (center,
// workers) are resolved by the solver.
func (sc scenario) params() types.Params {
	return types.Params{
		Width:          sc.Width,
		Steps:          sc.Steps,
		CenterPosition: sc.Center,
	}
}

// fileName returns the normalized artifact name for the scenario:
// lowercased, separators collapsed to single underscores.
func (sc scenario) fileName() string {
	clean := strings.ToLower(sc.Name)
	clean = strings.ReplaceAll(clean, " - ", "_")
	clean = strings.ReplaceAll(clean, "-", "_")
	clean = strings.ReplaceAll(clean, " ", "_")
	for strings.Contains(clean, "__") {
		clean = strings.ReplaceAll(clean, "__", "_")
	}
	return strings.Trim(clean, "_")
}

// loadScenario reads one scenario YAML file with Viper, filling defaults
// for any key the file omits.
func loadScenario(path string) (scenario, error) {
	v := viper.New()
	v.SetDefault(cfgKeyName, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	v.SetDefault(cfgKeyWidth, 501)
	v.SetDefault(cfgKeySteps, 250)
	v.SetDefault(cfgKeyCenter, -1)
	v.SetDefault(cfgKeyDataset, true)
	v.SetDefault(cfgKeyPlot, true)
	v.SetDefault(cfgKeyColormap, "binary")
	v.SetDefault(cfgKeyScale, 1)
	v.SetDefault(cfgKeyOutputDir, "")

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	return scenario{
		Name:        v.GetString(cfgKeyName),
		Width:       v.GetInt(cfgKeyWidth),
		Steps:       v.GetInt(cfgKeySteps),
		Center:      v.GetInt(cfgKeyCenter),
		SaveDataset: v.GetBool(cfgKeyDataset),
		SavePlot:    v.GetBool(cfgKeyPlot),
		Colormap:    v.GetString(cfgKeyColormap),
		Scale:       v.GetInt(cfgKeyScale),
		OutputDir:   v.GetString(cfgKeyOutputDir),
	}, nil
}

// scenarioFile is the structure written by "rule30 init".
type scenarioFile struct {
	ScenarioName   string `yaml:"scenario_name"`
	GridWidth      int    `yaml:"grid_width"`
	TimeSteps      int    `yaml:"time_steps"`
	CenterPosition int    `yaml:"center_position"`
	SaveDataset    bool   `yaml:"save_dataset"`
	SavePlot       bool   `yaml:"save_plot"`
	Colormap       string `yaml:"colormap"`
	PlotScale      int    `yaml:"plot_scale"`
}

// defaultScenarios are the files "rule30 init" seeds the config dir with.
var defaultScenarios = map[string]scenarioFile{
	"standard.yaml": {
		ScenarioName:   "Standard",
		GridWidth:      501,
		TimeSteps:      250,
		CenterPosition: -1,
		SaveDataset:    true,
		SavePlot:       true,
		Colormap:       "binary",
		PlotScale:      1,
	},
	"wide.yaml": {
		ScenarioName:   "Wide",
		GridWidth:      1001,
		TimeSteps:      500,
		CenterPosition: -1,
		SaveDataset:    true,
		SavePlot:       true,
		Colormap:       "binary",
		PlotScale:      1,
	},
	"narrow.yaml": {
		ScenarioName:   "Narrow",
		GridWidth:      101,
		TimeSteps:      100,
		CenterPosition: -1,
		SaveDataset:    true,
		SavePlot:       true,
		Colormap:       "inverted",
		PlotScale:      4,
	},
	"asymmetric.yaml": {
		ScenarioName:   "Asymmetric",
		GridWidth:      501,
		TimeSteps:      250,
		CenterPosition: 125,
		SaveDataset:    true,
		SavePlot:       true,
		Colormap:       "binary",
		PlotScale:      1,
	},
}

// writeScenarioIfMissing creates one scenario file unless it already
// exists (idempotent, never overwrites user edits).
func writeScenarioIfMissing(path string, sc scenarioFile) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&sc)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
