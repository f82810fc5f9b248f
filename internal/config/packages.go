package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Packages is a list of raw sensor packages to summarize, in order.
type Packages struct {
	Packages []Package `yaml:"packages"`
}

// Package is one raw sensor package: a training type code and its positional data.
type Package struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

// DefaultPackages returns the sample packages used when no file is given.
func DefaultPackages() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// LoadPackages reads and parses a YAML package file.
func LoadPackages(path string) ([]Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	var p Packages
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}

	if len(p.Packages) == 0 {
		return nil, fmt.Errorf("packages file %s: no packages", path)
	}

	return p.Packages, nil
}
