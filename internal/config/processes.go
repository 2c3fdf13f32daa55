package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProcessesConfig is the structure of the optional processes.yaml file.
type ProcessesConfig struct {
	Processes []string `yaml:"processes"`
}

// DefaultProcesses returns the built-in workcenter/process names offered by
// the manual entry form, in display order.
func DefaultProcesses() []string {
	processes := []string{
		"UV HOCK", "VARNISH", "LAMINATING", "WP GERMAN", "WP ESATEC",
		"WP ZHENGMAO 1 C", "WP ZHENGMAO 2 C",
		"FG MATTEL", "FG MASTER", "FG BICHENG", "FG BOBST",
		"JHOOK 5 C", "JHOOK 1",
		"LINE 1", "LINE 2", "LINE 3", "LINE 4",
	}
	for i := 1; i <= 22; i++ {
		processes = append(processes, fmt.Sprintf("PH %d", i))
	}
	for i := 1; i <= 6; i++ {
		processes = append(processes, fmt.Sprintf("HS %d", i))
	}
	return append(processes,
		"SABLON SEMI AUTO", "LINE BORONGAN",
		"FG ROLAM C",
		"VACUUM 1", "VACUUM 2", "VACUUM 3", "VACUUM 4",
	)
}

// LoadProcesses reads the process list from a YAML file.
// Returns the built-in list without error if the file doesn't exist.
func LoadProcesses(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config file is optional
			return DefaultProcesses(), nil
		}
		return nil, err
	}

	var cfg ProcessesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	processes := make([]string, 0, len(cfg.Processes))
	seen := make(map[string]bool, len(cfg.Processes))
	for _, p := range cfg.Processes {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		processes = append(processes, p)
	}
	if len(processes) == 0 {
		return nil, fmt.Errorf("%s lists no processes", path)
	}
	return processes, nil
}
